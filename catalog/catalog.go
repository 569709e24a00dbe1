package catalog

import (
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Operation names.
const (
	OpListControls     = "list_controls"
	OpGetControlDocs   = "get_control_docs"
	OpListSpecValues   = "list_spec_values"
	OpGetSpecValueDocs = "get_spec_value_docs"
	OpGetConfigSchema  = "get_config_schema"
	OpValidateConfig   = "validate_config"
)

// Argument names.
const (
	ArgControlName = "control_name"
	ArgSpecName    = "spec_name"
	ArgConfig      = "config"
)

// Namespace groups the catalog tools in the toolfoundation model.
const Namespace = "dynamic-forms"

const subject = "для конфигурации динамических форм на основе @gravity-ui/dynamic-forms"
const subjectEN = "for dynamic forms configuration based on @gravity-ui/dynamic-forms"

// Operation describes one supported request type and its argument contract.
type Operation struct {
	// Name is the unique operation identifier.
	Name string
	// Description is the bilingual text advertised to callers.
	Description string
	// Required lists the arguments that must be present, in order.
	Required []string
	// Enumerated maps an argument to its closed set of legal values.
	Enumerated map[string][]string
	// InputSchema is the advertised JSON Schema of the argument object.
	InputSchema *jsonschema.Schema
}

// Tool returns the toolfoundation form of the operation.
func (o Operation) Tool() model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        o.Name,
			Description: o.Description,
			InputSchema: o.InputSchema,
		},
		Tags: model.NormalizeTags([]string{Namespace, strings.SplitN(o.Name, "_", 2)[0]}),
	}
}

// Catalog is the immutable table of operations.
type Catalog struct {
	ops    []Operation
	byName map[string]int
}

// New builds the operation catalog.
func New() *Catalog {
	ops := []Operation{
		{
			Name: OpListControls,
			Description: "Возвращает markdown таблицу с описанием всех поддерживаемых контролов " + subject +
				" / Returns a markdown table with a description of all supported controls " + subjectEN,
			InputSchema: emptyObject(),
		},
		{
			Name: OpGetControlDocs,
			Description: "Возвращает markdown с описанием работы с контролом " + subject +
				" / Returns a markdown with a description of working with a control " + subjectEN,
			Required:   []string{ArgControlName},
			Enumerated: map[string][]string{ArgControlName: controlNames()},
			InputSchema: enumObject(ArgControlName,
				"Имя контрола из списка: "+strings.Join(controlNames(), ", "), controlNames()),
		},
		{
			Name: OpListSpecValues,
			Description: "Возвращает markdown таблицу с описанием всех поддерживаемых типов значений (Spec) " + subject +
				" / Returns a markdown table with a description of all supported types of values (Spec) " + subjectEN,
			InputSchema: emptyObject(),
		},
		{
			Name: OpGetSpecValueDocs,
			Description: "Возвращает markdown с описанием работы с конкретным типом значения (Spec) " + subject +
				", включая доступные контроллы / Returns a markdown with a description of working with a specific type of value (Spec) " +
				subjectEN + ", including available controls",
			Required:   []string{ArgSpecName},
			Enumerated: map[string][]string{ArgSpecName: specNames()},
			InputSchema: enumObject(ArgSpecName,
				"Имя Spec из списка: "+strings.Join(specNames(), ", "), specNames()),
		},
		{
			Name: OpGetConfigSchema,
			Description: "Возвращает полную JSON Schema конфигурации динамических форм на основе @gravity-ui/dynamic-forms в json формате" +
				" / Returns a full JSON Schema configuration of dynamic forms based on @gravity-ui/dynamic-forms in json format",
			InputSchema: emptyObject(),
		},
		{
			Name: OpValidateConfig,
			Description: "Валидирует JSON конфигурацию динамических форм по спецификации @gravity-ui/dynamic-forms" +
				" / Validates JSON configuration of dynamic forms against @gravity-ui/dynamic-forms specification",
			Required: []string{ArgConfig},
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					ArgConfig: {
						Type:        "object",
						Description: "JSON объект конфигурации для валидации / JSON configuration object to validate",
					},
				},
				Required: []string{ArgConfig},
			},
		},
	}

	byName := make(map[string]int, len(ops))
	for i, op := range ops {
		byName[op.Name] = i
	}
	return &Catalog{ops: ops, byName: byName}
}

// List returns all operations in catalog order.
func (c *Catalog) List() []Operation {
	out := make([]Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

// Get returns the operation with the given name.
func (c *Catalog) Get(name string) (Operation, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Operation{}, false
	}
	return c.ops[i], true
}

// IsLegalValue reports whether value is allowed for the argument of the
// named operation. Arguments without an enumerated set accept any value.
func (c *Catalog) IsLegalValue(opName, arg, value string) bool {
	op, ok := c.Get(opName)
	if !ok {
		return false
	}
	legal, constrained := op.Enumerated[arg]
	if !constrained {
		return true
	}
	return slices.Contains(legal, value)
}

// Tools returns the advertised tool definitions in catalog order.
func (c *Catalog) Tools() []model.Tool {
	out := make([]model.Tool, 0, len(c.ops))
	for _, op := range c.ops {
		out = append(out, op.Tool())
	}
	return out
}

func emptyObject() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
		Required:   []string{},
	}
}

func enumObject(arg, description string, values []string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			arg: {
				Type:        "string",
				Description: description,
				Enum:        enum,
			},
		},
		Required: []string{arg},
	}
}
