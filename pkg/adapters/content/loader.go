package content

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Descriptors converts the document into descriptors, elements first.
// Every entry is converted; the returned error joins all failures.
func (d *Document) Descriptors() ([]*domain.Descriptor, error) {
	var (
		out  []*domain.Descriptor
		errs []error
	)
	for i, spec := range d.Elements {
		desc, err := spec.descriptor()
		if err != nil {
			errs = append(errs, invalid(fmt.Sprintf("elements[%d]", i), spec.ID, err))
			continue
		}
		out = append(out, desc)
	}
	for i, spec := range d.Variables {
		desc, err := spec.descriptor()
		if err != nil {
			errs = append(errs, invalid(fmt.Sprintf("variables[%d]", i), spec.ID, err))
			continue
		}
		out = append(out, desc)
	}
	return out, errors.Join(errs...)
}

// Register converts the document and registers every descriptor in reg.
func (d *Document) Register(reg *registry.Registry) error {
	descs, err := d.Descriptors()
	if err != nil {
		return err
	}
	var errs []error
	for _, desc := range descs {
		if err := reg.Register(desc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadFile parses the file at path and registers its content in reg.
func LoadFile(reg *registry.Registry, path string) error {
	doc, err := ParseFile(path)
	if err != nil {
		return err
	}
	if err := doc.Register(reg); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// invalid names the entry by position, since its type may be the broken part.
func invalid(at, id string, err error) error {
	if id != "" {
		at = fmt.Sprintf("%s (%s)", at, id)
	}
	return &domain.InvalidRegistrationError{Reason: fmt.Sprintf("%s: %v", at, err)}
}

func (s ElementSpec) descriptor() (*domain.Descriptor, error) {
	t, err := domain.ParseType(s.Type)
	if err != nil {
		return nil, err
	}
	if t == domain.TypeVariable {
		return nil, fmt.Errorf("variables are declared under 'variables'")
	}
	d := &domain.Descriptor{Type: t, ID: s.ID, Name: s.Name, Description: s.Description}

	for i, raw := range s.Granted {
		ref, err := ParseRef(raw)
		if err != nil {
			return nil, fmt.Errorf("granted[%d]: %w", i, err)
		}
		d.Granted = append(d.Granted, ref)
	}
	for i, opt := range s.Options {
		option := domain.Option{Count: opt.Count}
		for j, raw := range opt.Choices {
			choice, err := parseChoice(raw)
			if err != nil {
				return nil, fmt.Errorf("options[%d].choices[%d]: %w", i, j, err)
			}
			option.Choices = append(option.Choices, choice)
		}
		d.Options = append(d.Options, option)
	}
	return d, nil
}

func (s VariableSpec) descriptor() (*domain.Descriptor, error) {
	if s.Formula == nil {
		return nil, fmt.Errorf("missing formula")
	}
	f, err := compileInt(s.Formula, "formula")
	if err != nil {
		return nil, err
	}
	return &domain.Descriptor{
		Type:        domain.TypeVariable,
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Formula:     f,
	}, nil
}

// ParseRef reads an element reference written as "type:id" or as a {type, id} map.
func ParseRef(raw any) (domain.Ref, error) {
	spec, err := toRefSpec(raw)
	if err != nil {
		return domain.Ref{}, err
	}
	if spec.ID == "" || spec.ID == "*" || spec.Match != "" {
		return domain.Ref{}, fmt.Errorf("reference %v must name a single id", raw)
	}
	t, err := domain.ParseType(spec.Type)
	if err != nil {
		return domain.Ref{}, err
	}
	return domain.ID(t, spec.ID), nil
}

// parseChoice accepts "type", "type:*", "type:id", {type, id} or {type, match}.
func parseChoice(raw any) (domain.Choice, error) {
	spec, err := toRefSpec(raw)
	if err != nil {
		return domain.Choice{}, err
	}
	t, err := domain.ParseType(spec.Type)
	if err != nil {
		return domain.Choice{}, err
	}
	switch {
	case spec.Match != "":
		pattern := spec.Match
		if _, err := path.Match(pattern, ""); err != nil {
			return domain.Choice{}, fmt.Errorf("bad match pattern %q: %w", pattern, err)
		}
		return domain.Where(t, func(d *domain.Descriptor) bool {
			ok, _ := path.Match(pattern, d.ID)
			return ok
		}), nil
	case spec.ID == "" || spec.ID == "*":
		return domain.AllOf(t), nil
	default:
		return domain.ByID(t, spec.ID), nil
	}
}

func toRefSpec(raw any) (refSpec, error) {
	var spec refSpec
	switch v := raw.(type) {
	case string:
		typ, id, _ := strings.Cut(v, ":")
		spec.Type, spec.ID = typ, id
	case map[string]any:
		if err := decodeStrict(v, &spec); err != nil {
			return spec, err
		}
	default:
		return spec, fmt.Errorf("unsupported reference %v (%T)", raw, raw)
	}
	if spec.Type == "" {
		return spec, fmt.Errorf("reference %v has no type", raw)
	}
	return spec, nil
}
