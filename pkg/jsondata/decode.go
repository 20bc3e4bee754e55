package jsondata

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Decode projects the object's fields into a struct using its json tags.
// target must be a pointer to a struct. Fields without a json tag, or tagged
// "-", are skipped; keys missing from the object leave the field untouched.
func (o *Object) Decode(target any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr {
		return errors.New("target must be a pointer to a struct")
	}

	targetValue = targetValue.Elem()
	if targetValue.Kind() != reflect.Struct {
		return errors.New("target must point to a struct")
	}

	targetType := targetValue.Type()

	for i := 0; i < targetType.NumField(); i++ {
		field := targetType.Field(i)
		fieldValue := targetValue.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if idx := strings.Index(tag, ","); idx != -1 {
			tag = tag[:idx]
		}

		value, ok := o.data.Get(tag)
		if !ok {
			continue
		}

		if err := setField(fieldValue, value); err != nil {
			return fmt.Errorf("error setting field %s: %w", field.Name, err)
		}
	}

	return nil
}

func setField(field reflect.Value, value any) error {
	if value == nil {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		return setString(field, value)
	case reflect.Bool:
		return setBool(field, value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloat(field, value)
	case reflect.Struct:
		return setStruct(field, value)
	case reflect.Slice:
		return setSlice(field, value)
	case reflect.Map:
		return setMap(field, value)
	}

	return fmt.Errorf("unsupported type: %s", field.Kind())
}

func setString(field reflect.Value, value any) error {
	if str, ok := value.(string); ok {
		field.SetString(str)
		return nil
	}
	field.SetString(fmt.Sprintf("%v", value))
	return nil
}

func setBool(field reflect.Value, value any) error {
	if b, ok := value.(bool); ok {
		field.SetBool(b)
		return nil
	}

	if str, ok := value.(string); ok {
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		field.SetBool(b)
		return nil
	}

	return fmt.Errorf("cannot convert %T to bool", value)
}

func setInt(field reflect.Value, value any) error {
	var intValue int64

	switch v := value.(type) {
	case json.Number:
		var err error
		intValue, err = v.Int64()
		if err != nil {
			return err
		}
	case int:
		intValue = int64(v)
	case int64:
		intValue = v
	case float64:
		intValue = int64(v)
	case string:
		var err error
		intValue, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %T to int", value)
	}

	field.SetInt(intValue)
	return nil
}

func setUint(field reflect.Value, value any) error {
	var uintValue uint64

	switch v := value.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return err
		}
		uintValue = uint64(i)
	case int:
		uintValue = uint64(v)
	case int64:
		uintValue = uint64(v)
	case float64:
		uintValue = uint64(v)
	case string:
		var err error
		uintValue, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %T to uint", value)
	}

	field.SetUint(uintValue)
	return nil
}

func setFloat(field reflect.Value, value any) error {
	var floatValue float64

	switch v := value.(type) {
	case json.Number:
		var err error
		floatValue, err = v.Float64()
		if err != nil {
			return err
		}
	case float64:
		floatValue = v
	case int:
		floatValue = float64(v)
	case int64:
		floatValue = float64(v)
	case string:
		var err error
		floatValue, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %T to float", value)
	}

	field.SetFloat(floatValue)
	return nil
}

func setStruct(field reflect.Value, value any) error {
	nested, err := asObject(value)
	if err != nil {
		return err
	}

	newValue := reflect.New(field.Type())
	if err := nested.Decode(newValue.Interface()); err != nil {
		return err
	}

	field.Set(newValue.Elem())
	return nil
}

func setSlice(field reflect.Value, value any) error {
	sliceValue, ok := value.([]any)
	if !ok {
		return fmt.Errorf("cannot set slice field with %T", value)
	}

	slice := reflect.MakeSlice(field.Type(), len(sliceValue), len(sliceValue))

	for i, item := range sliceValue {
		if err := setField(slice.Index(i), item); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

func setMap(field reflect.Value, value any) error {
	nested, err := asMap(value)
	if err != nil {
		return err
	}

	mapType := field.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("only string keys are supported for maps")
	}

	resultMap := reflect.MakeMap(mapType)

	for _, k := range nested.Keys() {
		v, _ := nested.Get(k)
		elemValue := reflect.New(mapType.Elem()).Elem()
		if err := setField(elemValue, v); err != nil {
			return err
		}
		resultMap.SetMapIndex(reflect.ValueOf(k), elemValue)
	}

	field.Set(resultMap)
	return nil
}

func asMap(value any) (*Map, error) {
	switch v := value.(type) {
	case *Map:
		return v, nil
	case map[string]any:
		return fromGoMap(v), nil
	}
	return nil, fmt.Errorf("cannot decode %T as an object", value)
}

func asObject(value any) (*Object, error) {
	m, err := asMap(value)
	if err != nil {
		return nil, err
	}
	return &Object{typeName: "Object", data: m}, nil
}
