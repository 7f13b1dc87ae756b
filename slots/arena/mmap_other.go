//go:build !unix

package arena

// NewMmap returns a Heap arena when anonymous mappings are not available.
func NewMmap() Arena {
	return Heap{}
}
