package blob

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PrintInfo writes a human-readable summary of b to standard output.
func (b *Blob) PrintInfo() {
	b.WriteInfo(os.Stdout)
}

// WriteInfo writes a human-readable summary of b to w: identifier, name,
// dimension, point count, element type, encoding mode and fields.
// Write errors are ignored; b is never modified.
func (b *Blob) WriteInfo(w io.Writer) {
	mode := "ASCII"
	if b.binary {
		mode = "Binary"
	}

	aux := "none"
	if len(b.auxNames) > 0 {
		aux = strings.Join(b.auxNames, " ")
	}

	fmt.Fprintf(w, "ObjectType  = Blob\n")
	fmt.Fprintf(w, "ID          = %d\n", b.id)
	if b.name != "" {
		fmt.Fprintf(w, "Name        = %s\n", b.name)
	}
	if b.comment != "" {
		fmt.Fprintf(w, "Comment     = %s\n", b.comment)
	}
	fmt.Fprintf(w, "NDims       = %d\n", b.dim)
	fmt.Fprintf(w, "NPoints     = %d\n", b.points.Len())
	fmt.Fprintf(w, "ElementType = %s\n", b.elemType)
	fmt.Fprintf(w, "Encoding    = %s\n", mode)
	fmt.Fprintf(w, "AuxFields   = %s\n", aux)
}
