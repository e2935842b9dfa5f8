package logic

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"facette.io/natsort"
)

// valueRank orders values of different kinds against each other
type valueRank int

const (
	rankAbsent valueRank = iota
	rankBool
	rankNumber
	rankTime
	rankString
	rankOther
)

// CompareValues orders two cell values and returns -1, 0 or +1.
//
// Values of the same kind use their natural ordering: false before true,
// numbers numerically (NaN first), times chronologically, strings
// lexicographically. Values of different kinds order by kind:
//
//	absent (nil) < bool < number < time < string < everything else
//
// Anything else is compared by its fmt.Sprint form.
func CompareValues(a, b any) int {
	return compareValues(a, b, false)
}

// CompareNatural is CompareValues with natural ordering for strings
func CompareNatural(a, b any) int {
	return compareValues(a, b, true)
}

func compareValues(a, b any, natural bool) int {
	ra, va := classify(a)
	rb, vb := classify(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankAbsent:
		return 0
	case rankBool:
		return compareBools(va.Bool(), vb.Bool())
	case rankNumber:
		return compareNumbers(va, vb)
	case rankTime:
		return va.Interface().(time.Time).Compare(vb.Interface().(time.Time))
	case rankString:
		if natural {
			return compareNaturalStrings(va.String(), vb.String())
		}
		return cmp.Compare(va.String(), vb.String())
	default:
		return cmp.Compare(fmt.Sprint(va.Interface()), fmt.Sprint(vb.Interface()))
	}
}

// classify unwraps pointers and interfaces and reports the rank of the value underneath
func classify(v any) (valueRank, reflect.Value) {
	if v == nil {
		return rankAbsent, reflect.Value{}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rankAbsent, reflect.Value{}
		}
		rv = rv.Elem()
	}

	if rv.Type() == timeType {
		return rankTime, rv
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rankBool, rv
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber, rv
	case reflect.String:
		return rankString, rv
	default:
		return rankOther, rv
	}
}

var timeType = reflect.TypeOf(time.Time{})

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumbers keeps integer precision when both sides are integers and
// falls back to float64 otherwise
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isInt(a) && isUint(b):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUint(a) && isInt(b):
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	default:
		return cmp.Compare(toFloat(a), toFloat(b))
	}
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func compareNaturalStrings(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}
