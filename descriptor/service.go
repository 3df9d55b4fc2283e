package descriptor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"valuecast/internal/match"
	"valuecast/primitive"
	"valuecast/utils"
)

var (
	ErrEnumSampleInvalid = errors.New("enum sample must be a named integer type")
	ErrEnumRedefined     = errors.New("enum type already registered")
	ErrEnumMemberBlank   = errors.New("enum member name must not be blank")
	ErrEnumValueTooWide  = errors.New("enum member value does not fit the underlying width")
	ErrMemberCollision   = errors.New("two members normalize to the same name")
)

// Service computes and caches destination type descriptors. Enum member
// tables are registered up front, before the first Describe call, and are
// read-only afterwards. All methods are safe for concurrent use.
type Service struct {
	mu    sync.RWMutex
	enums map[reflect.Type]*EnumSpec
	cache map[reflect.Type]*Descriptor
}

func NewService() *Service {
	return &Service{
		enums: make(map[reflect.Type]*EnumSpec),
		cache: make(map[reflect.Type]*Descriptor),
	}
}

// RegisterEnum declares sample's type as an enum with the given defined
// members, in order. Width and signedness come from the underlying type;
// flags marks the members as independent bits combined by OR.
func (s *Service) RegisterEnum(sample any, flags bool, members ...EnumMember) error {
	t := reflect.TypeOf(sample)
	kind := primitive.FromReflectType(t)
	if t == nil || t.PkgPath() == "" || !kind.IsInteger() {
		return fmt.Errorf("%w: %v", ErrEnumSampleInvalid, t)
	}

	spec := &EnumSpec{
		Width:   kind.Bits(),
		Signed:  kind.IsSigned(),
		Flags:   flags,
		Members: make([]EnumMember, len(members)),
	}
	copy(spec.Members, members)

	for _, m := range spec.Members {
		if m.Name == "" {
			return fmt.Errorf("%w: %v", ErrEnumMemberBlank, t)
		}
		if err := checkValueWidth(m.Value, spec); err != nil {
			return fmt.Errorf("%w: %v member %q", err, t, m.Name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.enums[t]; exists {
		return fmt.Errorf("%w: %v", ErrEnumRedefined, t)
	}
	s.enums[t] = spec

	return nil
}

func checkValueWidth(v uint64, spec *EnumSpec) error {
	if spec.Width >= 64 {
		return nil
	}

	if spec.Signed {
		half := int64(1) << uint(spec.Width-1)
		if !utils.IsInRange(-half, int64(v), half-1) {
			return ErrEnumValueTooWide
		}
		return nil
	}

	if v > spec.Mask() {
		return ErrEnumValueTooWide
	}
	return nil
}

// Describe returns the descriptor for t, computing and caching it on first
// use. Descriptors never recurse into member types; nested types are
// described lazily when the binder reaches them.
func (s *Service) Describe(t reflect.Type) (*Descriptor, error) {
	s.mu.RLock()
	d, ok := s.cache[t]
	s.mu.RUnlock()
	if ok {
		return d, nil
	}

	d, err := s.build(t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if cached, ok := s.cache[t]; ok {
		d = cached
	} else {
		s.cache[t] = d
	}
	s.mu.Unlock()

	return d, nil
}

func (s *Service) build(t reflect.Type) (*Descriptor, error) {
	d := &Descriptor{Type: t, ArrayLen: -1}

	s.mu.RLock()
	spec := s.enums[t]
	s.mu.RUnlock()
	if spec != nil {
		d.Shape = ShapeEnum
		d.Enum = spec
		return d, nil
	}

	switch {
	case t.Kind() == reflect.Ptr:
		d.Shape = ShapePointer
		d.Elem = t.Elem()

	case t.Kind() == reflect.Interface:
		if t.NumMethod() == 0 {
			d.Shape = ShapeInterface
		}
		// non-empty interfaces stay ShapeUnknown: nothing can be constructed

	case primitive.FromReflectType(t) != 0:
		// time.Time is caught here, before the struct case
		d.Shape = ShapePrimitive
		d.Prim = primitive.FromReflectType(t)

	case t.Kind() == reflect.Slice:
		d.Shape = ShapeCollection
		d.Elem = t.Elem()

	case t.Kind() == reflect.Array:
		d.Shape = ShapeCollection
		d.Elem = t.Elem()
		d.ArrayLen = t.Len()

	case t.Kind() == reflect.Map:
		d.Shape = ShapeMap
		d.Key = t.Key()
		d.Elem = t.Elem()

	case t.Kind() == reflect.Struct:
		d.Shape = ShapeObject
		if err := buildMembers(d, t); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func buildMembers(d *Descriptor, t reflect.Type) error {
	d.byNorm = make(map[string]int)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		norm, err := match.NormalizeMember(f.Name)
		if err != nil {
			return fmt.Errorf("describe %v field %d: %w", t, i, err)
		}

		if _, dup := d.byNorm[norm]; dup {
			return fmt.Errorf("%w: %v.%s normalizes to %q", ErrMemberCollision, t, f.Name, norm)
		}

		d.byNorm[norm] = len(d.Members)
		d.Members = append(d.Members, Member{
			Name:       f.Name,
			Normalized: norm,
			Type:       f.Type,
			Index:      i,
		})
	}

	return nil
}
