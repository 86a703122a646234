package arrayvec_test

import (
	"errors"
	"fmt"

	"github.com/momentics/arrayvec/arrayvec"
)

func Example() {
	var v arrayvec.ArrayVec[int, [3]int]
	v.Push(1)
	v.Push(2)
	v.Push(3)

	var full *arrayvec.CapacityError[int]
	if err := v.Push(4); errors.As(err, &full) {
		fmt.Println("rejected:", full.Item)
	}

	last, _ := v.Pop()
	fmt.Println("popped:", last)

	v.TryInsert(0, 9)
	fmt.Println(v.AsSlice())
	// Output:
	// rejected: 4
	// popped: 3
	// [9 1 2]
}

func ExampleArrayVec_Retain() {
	v, _ := arrayvec.FromSlice[int, [8]int]([]int{1, 2, 3, 4, 5, 6})
	v.Retain(func(x *int) bool { return *x%3 != 0 })
	fmt.Println(v.String())
	// Output: [1 2 4 5]
}

func ExampleArrayVec_SetLen() {
	var v arrayvec.ArrayVec[byte, [8]byte]
	n := copy(v.SpareCapacity(), "hello")
	v.SetLen(n)
	fmt.Printf("%s %d/%d\n", v.AsSlice(), v.Len(), v.Cap())
	// Output: hello 5/8
}
