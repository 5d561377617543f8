package bitvec

import (
	"github.com/hupe1980/bitvec/internal/bitops"
	"github.com/hupe1980/bitvec/internal/blocks"
)

// Convert copies the first min(dst.Len(), src.Len()) bits of src into dst
// and clears the rest of dst. The block types may differ.
func Convert[D, S Block](dst Storage[D], src Storage[S]) {
	dd, sd := dst.Data(), src.Data()
	n := min(dst.Len(), src.Len())

	if blocks.Width[D]() == blocks.Width[S]() {
		// Same layout: copy whole blocks and mask the tail.
		for i := range blocks.StorageSize(n, blocks.Width[D]()) {
			dd[i] = D(sd[i])
		}
		bitops.FillRange(dd, n, dst.Len(), false)
		return
	}

	clear(dd)
	for i := bitops.NextSet(sd, src.Len(), 0); i >= 0 && i < n; i = bitops.NextSet(sd, src.Len(), i+1) {
		bitops.Set(dd, i)
	}
}

// ConvertFixed returns a Fixed[D] holding the bits of src.
func ConvertFixed[D, S Block](src Storage[S]) *Fixed[D] {
	f := NewFixed[D](src.Len())
	Convert[D, S](f, src)
	return f
}

// ConvertDynamic returns a Dynamic[D] holding the bits of src.
func ConvertDynamic[D, S Block](src Storage[S], optFns ...Option) *Dynamic[D] {
	d := NewDynamic[D](src.Len(), optFns...)
	Convert[D, S](d, src)
	return d
}
