package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Logf writes a debug message to stderr. Elements and documents among args
// are rendered as XML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *etree.Element:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			buf := bytes.NewBuffer(nil)
			x.WriteTo(buf, &etree.WriteSettings{})
			args[i] = buf.String()
		case *etree.Document:
			s, err := x.WriteToString()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *etree.Document] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
