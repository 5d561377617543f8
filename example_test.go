package bitvec_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec"
)

// Example_fixed demonstrates single-bit access on a fixed-size bitset.
func Example_fixed() {
	bs := bitvec.NewFixed[uint8](10)
	bs.Set(0)
	bs.Set(3)
	bs.Set(9)

	fmt.Println(bs.String(), bs.Count(), bs.All(), bs.Any())
	// Output: 1001000001 3 false true
}

// Example_ranges demonstrates range operations across block boundaries.
func Example_ranges() {
	bs := bitvec.NewFixed[uint8](16)
	bs.SetRange(3, 13)
	bs.FlipRangeStep(0, 16, 4)

	fmt.Println(bs.String())
	// Output: 1001011101110000
}

// Example_dynamic demonstrates growing a bitset one bit at a time.
func Example_dynamic() {
	var bs bitvec.Dynamic[uint32]
	for range 33 {
		bs.PushBack(true)
	}

	fmt.Println(bs.Len(), bs.StorageSize(), bs.PartialSize(), bs.Test(32))
	// Output: 33 2 1 true
}

// Example_checked demonstrates recoverable bounds errors.
func Example_checked() {
	bs := bitvec.NewFixed[uint64](100)

	err := bs.Checked().Set(100)
	var oor *bitvec.ErrIndexOutOfRange
	fmt.Println(errors.As(err, &oor), oor.Index, oor.Size)
	// Output: true 100 100
}

// Example_ones demonstrates iterating over set bits.
func Example_ones() {
	bs := bitvec.ParseDynamic[uint16]("0110000001")
	fmt.Println(slices.Collect(bs.Ones()))
	// Output: [1 2 9]
}

// Example_roaring demonstrates exporting to a roaring bitmap.
func Example_roaring() {
	bs := bitvec.ParseFixed[uint64](8, "11000011")
	bm, err := bitvec.ToRoaring[uint64](bs)
	if err != nil {
		panic(err)
	}

	back := bitvec.NewFixed[uint8](8)
	if err := bitvec.FromRoaring[uint8](back, roaring.BitmapOf(bm.ToArray()...)); err != nil {
		panic(err)
	}

	fmt.Println(bm.ToArray(), back.String())
	// Output: [0 1 6 7] 11000011
}

func Example_memoryBudget() {
	budget := bitvec.NewMemoryBudget(16)
	bs := bitvec.NewDynamic[uint64](0, bitvec.WithMemoryBudget(budget))

	fmt.Println(bs.TryResize(128), budget.Usage())

	err := bs.TryResize(129)
	fmt.Println(errors.Is(err, bitvec.ErrMemoryLimitExceeded), bs.Len())
	// Output:
	// <nil> 16
	// true 128
}
