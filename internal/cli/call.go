package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/formdocs/catalog"
	"github.com/jonwraymond/formdocs/dispatch"
	"github.com/jonwraymond/formdocs/internal/container"
)

func newCallCmd(opts *options) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "call <operation>",
		Short: "Dispatch one operation and print its answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arguments map[string]any
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &arguments); err != nil {
					return fmt.Errorf("parse --args: %w", err)
				}
			}

			c, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			env := c.Dispatcher().Dispatch(commandContext(cmd), args[0], arguments)
			return printEnvelope(cmd.OutOrStdout(), env)
		},
	}
	cmd.Flags().StringVarP(&rawArgs, "args", "a", "", `Operation arguments as a JSON object, e.g. '{"control_name":"select"}'`)
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a dynamic-forms configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var document any
			if err := json.Unmarshal(data, &document); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			c, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			return validateDocument(cmd, c, document)
		},
	}
}

func validateDocument(cmd *cobra.Command, c *container.Container, document any) error {
	env := c.Dispatcher().Dispatch(commandContext(cmd), catalog.OpValidateConfig, map[string]any{
		catalog.ArgConfig: document,
	})
	if err := printEnvelope(cmd.OutOrStdout(), env); err != nil {
		return err
	}

	var report dispatch.ValidationReport
	if err := json.Unmarshal([]byte(env.Text), &report); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}
	if !report.Valid {
		return errReported
	}
	return nil
}

func printEnvelope(w io.Writer, env dispatch.Envelope) error {
	if _, err := fmt.Fprintln(w, env.Text); err != nil {
		return err
	}
	if env.IsError {
		return errReported
	}
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf.Bytes(), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
