// Command example spools stdin through a spool.Buffer and writes it back
// out twice, showing that copy-out does not consume the buffered bytes
// even after the buffer has spilled to disk.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lanrat/spool"
)

func main() {
	buf := spool.New(&spool.Config{
		MemoryThreshold: 4 << 10,  // spill to disk past 4KB
		BufferLimit:     64 << 20, // refuse to buffer more than 64MB
	})
	defer buf.Close()

	if _, err := io.Copy(buf, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "buffering stdin: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "buffered %d bytes\n", buf.Len())

	for i := 0; i < 2; i++ {
		if _, err := buf.CopyTo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "copy %d: %v\n", i, err)
			os.Exit(1)
		}
	}
}
