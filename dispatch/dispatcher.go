package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/formdocs/catalog"
	"github.com/jonwraymond/formdocs/knowledge"
	"github.com/jonwraymond/formdocs/validate"
)

const instrumentationName = "github.com/jonwraymond/formdocs/dispatch"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-request records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// Dispatcher answers catalog operations. It holds only immutable state and
// is safe for concurrent use.
type Dispatcher struct {
	catalog   *catalog.Catalog
	kb        *knowledge.Base
	validator validate.Validator
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New creates a Dispatcher over the given catalog, knowledge base and
// validation engine.
func New(cat *catalog.Catalog, kb *knowledge.Base, v validate.Validator, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		catalog:   cat,
		kb:        kb,
		validator: v,
		logger:    slog.Default(),
		tracer:    otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Catalog returns the operation catalog the dispatcher validates against.
func (d *Dispatcher) Catalog() *catalog.Catalog { return d.catalog }

// Dispatch runs the named operation. It always returns an envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (env Envelope) {
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := d.tracer.Start(ctx, "dispatch "+name,
		trace.WithAttributes(
			attribute.String("formdocs.operation", name),
			attribute.String("formdocs.request_id", requestID),
		))

	var fail *Failure
	defer func() {
		if r := recover(); r != nil {
			fail = &Failure{Kind: FailureValidator, Message: fmt.Sprint(r)}
			env = errorEnvelope(fail)
		}
		d.record(ctx, span, name, requestID, start, fail)
		span.End()
	}()

	text, fail := d.resolve(ctx, name, args)
	if fail != nil {
		return errorEnvelope(fail)
	}
	return successEnvelope(text)
}

func (d *Dispatcher) resolve(ctx context.Context, name string, args map[string]any) (string, *Failure) {
	op, ok := d.catalog.Get(name)
	if !ok {
		return "", usageFailure("Unknown tool: %s", name)
	}
	if fail := d.checkArguments(op, args); fail != nil {
		return "", fail
	}
	return d.answer(ctx, op, args)
}

// checkArguments verifies presence of required arguments and membership of
// enumerated ones. Arguments the operation does not declare are ignored.
func (d *Dispatcher) checkArguments(op catalog.Operation, args map[string]any) *Failure {
	for _, arg := range op.Required {
		if isMissing(args[arg]) {
			return usageFailure("%s", missingArgumentMessage(arg))
		}
	}
	for arg := range op.Enumerated {
		v, present := args[arg]
		if !present {
			continue
		}
		s, isString := v.(string)
		if !isString || !d.catalog.IsLegalValue(op.Name, arg, s) {
			return usageFailure("%s", illegalValueMessage(op, arg, v))
		}
	}
	return nil
}

func isMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	default:
		return false
	}
}

func (d *Dispatcher) answer(ctx context.Context, op catalog.Operation, args map[string]any) (string, *Failure) {
	switch op.Name {
	case catalog.OpListControls:
		return d.kb.ControlsOverview(), nil

	case catalog.OpListSpecValues:
		return d.kb.SpecsOverview(), nil

	case catalog.OpGetConfigSchema:
		return d.kb.ConfigSchemaText(), nil

	case catalog.OpGetControlDocs:
		kind, _ := catalog.ParseControlKind(args[catalog.ArgControlName].(string))
		text, err := d.kb.ControlDoc(kind)
		if err != nil {
			return "", &Failure{Kind: FailureDataIntegrity, Message: missingControlDocMessage(kind), Err: err}
		}
		return text, nil

	case catalog.OpGetSpecValueDocs:
		kind, _ := catalog.ParseSpecKind(args[catalog.ArgSpecName].(string))
		text, err := d.kb.SpecDoc(kind)
		if err != nil {
			return "", &Failure{Kind: FailureDataIntegrity, Message: missingSpecDocMessage(kind), Err: err}
		}
		return text, nil

	case catalog.OpValidateConfig:
		return d.validateConfig(ctx, args[catalog.ArgConfig])

	default:
		return "", usageFailure("Unknown tool: %s", op.Name)
	}
}

func (d *Dispatcher) validateConfig(ctx context.Context, document any) (string, *Failure) {
	schema := d.kb.ConfigSchema()

	outcome, err := d.validator.Validate(document, schema)
	if err != nil {
		return "", &Failure{Kind: FailureValidator, Message: err.Error(), Err: err}
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("formdocs.config.valid", outcome.Valid),
		attribute.Int("formdocs.config.issues", len(outcome.Issues)),
	)

	text, err := renderReport(normalizeOutcome(outcome, schema))
	if err != nil {
		return "", &Failure{Kind: FailureValidator, Message: err.Error(), Err: err}
	}
	return text, nil
}

func (d *Dispatcher) record(ctx context.Context, span trace.Span, name, requestID string, start time.Time, fail *Failure) {
	attrs := []any{
		"op", name,
		"request_id", requestID,
		"duration", time.Since(start),
		"is_error", fail != nil,
	}

	if fail == nil {
		span.SetStatus(codes.Ok, "")
		d.logger.DebugContext(ctx, "dispatch", attrs...)
		return
	}

	span.SetAttributes(attribute.String("formdocs.failure", fail.Kind.String()))
	span.SetStatus(codes.Error, fail.Message)
	attrs = append(attrs, "fault", fail.Kind.String(), "err", fail.Message)

	switch fail.Kind {
	case FailureDataIntegrity:
		d.logger.ErrorContext(ctx, "knowledge base is missing a document", attrs...)
	case FailureValidator:
		d.logger.WarnContext(ctx, "validation engine failed", attrs...)
	default:
		d.logger.InfoContext(ctx, "dispatch rejected", attrs...)
	}
}
