package lookup

import (
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ValidationErrors maps config field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// configDoc is the declarative form of the static parts of a Config.
type configDoc struct {
	ComponentProp string            `yaml:"componentProp"`
	MapComponents map[string]string `yaml:"mapComponents"`
	MapProps      yaml.Node         `yaml:"mapProps"`
	DisableWarn   bool              `yaml:"disableWarn"`
}

// ParseConfig decodes a YAML or JSON config document:
//
//	componentProp: type
//	mapComponents:
//	  FormText: BaseInput
//	mapProps:
//	  label: tag
//	  hint: false
//	disableWarn: false
//
// mapProps passes run in document order. A false value deletes the
// property. The document is checked against [ConfigSchema] and the
// resulting Config against [Config.Validate].
func ParseConfig(data []byte) (Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("decoding lookup config: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return Config{}, fmt.Errorf("invalid lookup config: %w", err)
	}

	var doc configDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("decoding lookup config: %w", err)
	}
	rules, err := propRules(&doc.MapProps)
	if err != nil {
		return Config{}, fmt.Errorf("invalid lookup config: %w", err)
	}

	cfg := Config{
		MapComponents: doc.MapComponents,
		DisableWarn:   doc.DisableWarn,
	}
	if doc.ComponentProp != "" {
		cfg.ComponentProp = Named(doc.ComponentProp)
	}
	if len(rules) > 0 {
		cfg.MapProps = MapProps(rules...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid lookup config: %w", err)
	}
	return cfg, nil
}

// propRules reads the mapProps mapping in document order.
func propRules(n *yaml.Node) ([]PropRule, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("mapProps: expected a mapping, line %d", n.Line)
	}

	rules := make([]PropRule, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("mapProps.%s: expected a property name or false, line %d", key.Value, val.Line)
		}
		switch val.Tag {
		case "!!bool":
			b, err := strconv.ParseBool(val.Value)
			if err != nil || b {
				return nil, fmt.Errorf("mapProps.%s: only false is allowed, line %d", key.Value, val.Line)
			}
			rules = append(rules, Delete(key.Value))
		default:
			rules = append(rules, Rename(key.Value, val.Value))
		}
	}
	return rules, nil
}

// Validate checks that every property and component name in c is non-empty.
// Function-valued parts are not inspected. Failures are [ValidationErrors].
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MapComponents,
			validation.By(nonEmptyKeys),
			validation.Each(validation.Required),
		),
		validation.Field(&c.MapProps, validation.By(validPropMapper)),
	)
}

func nonEmptyKeys(value any) error {
	m, _ := value.(map[string]string)
	if _, ok := m[""]; ok {
		return errors.New("must not contain an empty component name")
	}
	return nil
}

func validPropMapper(value any) error {
	m, ok := value.(PropMapper)
	if !ok {
		return nil
	}
	errs := ValidationErrors{}
	for i, r := range m.Rules() {
		switch {
		case r.Prop == "":
			errs[strconv.Itoa(i)] = errors.New("property name cannot be blank")
		case r.Func == nil && !r.Delete && r.To == "":
			errs[strconv.Itoa(i)] = fmt.Errorf("replacement for %q cannot be blank", r.Prop)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
