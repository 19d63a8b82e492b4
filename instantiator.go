package wirebox

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// instantiator constructs one object for one Definition, given the
// already-resolved dependency values supplied by the container. It owns
// all reflect mechanics; it never resolves references itself.
type instantiator struct {
	types TypeRegistry
}

// construct builds the object for def. values is aligned with
// def.Dependencies: references already resolved to instances, literals
// passed through as declared.
func (in *instantiator) construct(def Definition, values []any) (any, error) {
	desc, err := in.types.Lookup(def.TypeRef)
	if err != nil {
		return nil, err
	}

	if def.Strategy == StrategyConstructor {
		return in.constructWithFactory(def, desc, values)
	}
	return in.constructWithPoints(def, desc, values)
}

func (in *instantiator) constructWithFactory(def Definition, desc TypeDescriptor, values []any) (any, error) {
	if !desc.Factory.IsValid() {
		// Registered type has no parametered constructor.
		return nil, &UnknownTypeError{TypeRef: def.TypeRef}
	}

	fnType := desc.Factory.Type()
	if fnType.NumIn() != len(def.Dependencies) {
		return nil, &ConstructorArityMismatchError{
			TypeRef: def.TypeRef,
			Want:    fnType.NumIn(),
			Got:     len(def.Dependencies),
		}
	}

	args := make([]reflect.Value, fnType.NumIn())
	for i, dep := range def.Dependencies {
		if dep.Index >= fnType.NumIn() {
			return nil, &ConstructorArityMismatchError{
				TypeRef: def.TypeRef,
				Want:    fnType.NumIn(),
				Got:     dep.Index + 1,
			}
		}
		arg, err := coerce(values[i], fnType.In(dep.Index))
		if err != nil {
			return nil, err
		}
		args[dep.Index] = arg
	}

	results := desc.Factory.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}

// constructWithPoints builds the bean with zero arguments, then applies
// each named dependency through its setter or field.
func (in *instantiator) constructWithPoints(def Definition, desc TypeDescriptor, values []any) (any, error) {
	inst, err := in.zeroConstruct(def.TypeRef, desc)
	if err != nil {
		return nil, err
	}

	for i, dep := range def.Dependencies {
		if def.Strategy == StrategySetter {
			err = applySetter(def.TypeRef, inst, dep.Name, values[i])
		} else {
			err = applyField(def.TypeRef, inst, dep.Name, values[i])
		}
		if err != nil {
			return nil, err
		}
	}
	return inst.Interface(), nil
}

// zeroConstruct prefers a zero-argument factory, falls back to
// reflect.New on the registered concrete type.
func (in *instantiator) zeroConstruct(typeRef string, desc TypeDescriptor) (reflect.Value, error) {
	if desc.Factory.IsValid() && desc.Factory.Type().NumIn() == 0 {
		results := desc.Factory.Call(nil)
		if len(results) == 2 && !results[1].IsNil() {
			return reflect.Value{}, results[1].Interface().(error)
		}
		return results[0], nil
	}

	if desc.Type != nil {
		if desc.Type.Kind() != reflect.Struct {
			return reflect.Value{}, &UnknownTypeError{TypeRef: typeRef}
		}
		return reflect.New(desc.Type), nil
	}

	return reflect.Value{}, &NoDefaultConstructorError{TypeRef: typeRef}
}

func applySetter(typeRef string, inst reflect.Value, name string, value any) error {
	method := inst.MethodByName("Set" + exportName(name))
	if !method.IsValid() || method.Type().NumIn() != 1 {
		return &UnknownInjectionPointError{TypeRef: typeRef, Name: name}
	}

	arg, err := coerce(value, method.Type().In(0))
	if err != nil {
		return err
	}
	method.Call([]reflect.Value{arg})
	return nil
}

func applyField(typeRef string, inst reflect.Value, name string, value any) error {
	elem := inst
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return &UnknownInjectionPointError{TypeRef: typeRef, Name: name}
	}

	field := elem.FieldByName(exportName(name))
	if !field.IsValid() || !field.CanSet() {
		return &UnknownInjectionPointError{TypeRef: typeRef, Name: name}
	}

	val, err := coerce(value, field.Type())
	if err != nil {
		return err
	}
	field.Set(val)
	return nil
}

// coerce turns an injected value into a reflect.Value assignable to
// target. A nil literal injects the zero value.
func coerce(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	val := reflect.ValueOf(value)
	if !val.Type().AssignableTo(target) {
		return reflect.Value{}, &TypeMismatchError{
			Expected: target.String(),
			Got:      val.Type().String(),
		}
	}
	return val, nil
}

// exportName maps an injection point name to its exported Go spelling:
// "dao" addresses SetDao or the Dao field.
func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
