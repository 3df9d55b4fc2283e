package primitive

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, float conversions that preserve the runtime value
	CategoryUnsafeNumber                          // int, float conversions that may truncate or lose precision
	CategoryTextNumber                            // int, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) -> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) -> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) -> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) -> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) -> time.Duration: numerical (floating-point) duration representation

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	// CategorySafeNumber and CategoryUnsafeNumber share the same pair set;
	// they differ in whether Coerce verifies value preservation at runtime.
	numberPairs := map[ConversionPair]struct{}{}
	for _, fromKind := range []KindEnum{KindInt64, KindFloat64} {
		for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsNumber() {
				continue
			}

			numberPairs[ConversionPair{fromKind, toKind}] = struct{}{}
		}
	}

	conversionPairs[CategorySafeNumber] = numberPairs
	conversionPairs[CategoryUnsafeNumber] = numberPairs

	// CategoryTextNumber: text <-> number conversions
	conversionPairs[CategoryTextNumber] = map[ConversionPair]struct{}{}
	for numberKind := KindEnum(0); int(numberKind) < KindTotal; numberKind++ {
		if !numberKind.IsNumber() {
			continue
		}

		conversionPairs[CategoryTextNumber][ConversionPair{KindString, numberKind}] = struct{}{}
	}
	conversionPairs[CategoryTextNumber][ConversionPair{KindInt64, KindString}] = struct{}{}
	conversionPairs[CategoryTextNumber][ConversionPair{KindFloat64, KindString}] = struct{}{}

	// CategoryNumericBool: int <-> bool conversions
	conversionPairs[CategoryNumericBool] = map[ConversionPair]struct{}{
		{KindInt64, KindBool}: {},
	}
	for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
		if !toKind.IsInteger() {
			continue
		}

		conversionPairs[CategoryNumericBool][ConversionPair{KindBool, toKind}] = struct{}{}
	}

	// string <-> bool: yes, no, on, off, true, false
	conversionPairs[CategoryTextualBool] = map[ConversionPair]struct{}{
		{KindString, KindBool}: {},
		{KindBool, KindString}: {},
	}

	// CategoryDatetime: string(RFC3339Nano) -> time.Time conversions
	conversionPairs[CategoryDatetime] = map[ConversionPair]struct{}{
		{KindString, KindTime}: {},
	}

	// CategoryTimestamp: int(Unix seconds) -> time.Time conversions
	conversionPairs[CategoryTimestamp] = map[ConversionPair]struct{}{
		{KindInt64, KindTime}: {},
	}

	// CategoryDuration: string(2h45m) -> time.Duration conversions
	conversionPairs[CategoryDuration] = map[ConversionPair]struct{}{
		{KindString, KindDuration}: {},
	}

	// CategoryNanoseconds: int(nanoseconds) -> time.Duration conversions
	conversionPairs[CategoryNanoseconds] = map[ConversionPair]struct{}{
		{KindInt64, KindDuration}: {},
	}

	// CategorySeconds: float(seconds) -> time.Duration conversions
	conversionPairs[CategorySeconds] = map[ConversionPair]struct{}{
		{KindFloat64, KindDuration}: {},
	}
}

// categoriesFor returns the allowed categories that permit the given pair.
func categoriesFor(allowed CategoryEnum, pair ConversionPair) CategoryEnum {
	var res CategoryEnum

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		if _, ok := conversionPairs[category][pair]; ok {
			res |= category
		}
	}

	return res
}
