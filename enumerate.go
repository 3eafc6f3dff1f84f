package vkcore

// Two-call enumeration: a call with a nil array pointer reports the element
// count, a second call with an array of that many elements fills it.

func countOf[T any](call func(count *uint32, items *T) Result) (uint32, error) {
	var n uint32
	if result := call(&n, nil); result != SUCCESS {
		return 0, result
	}
	return n, nil
}

// enumerate fills a zeroed slice of exactly count elements. Any status other
// than SUCCESS, INCOMPLETE included, is returned as the error.
func enumerate[T any](count uint32, call func(count *uint32, items *T) Result) ([]T, error) {
	items := make([]T, count)
	n := count
	if result := call(&n, firstOrNil(items)); result != SUCCESS {
		return nil, result
	}
	return items, nil
}

func countOfVoid[T any](call func(count *uint32, items *T)) uint32 {
	var n uint32
	call(&n, nil)
	return n
}

func enumerateVoid[T any](count uint32, call func(count *uint32, items *T)) []T {
	items := make([]T, count)
	n := count
	call(&n, firstOrNil(items))
	return items
}
