// Package translate formats user visible messages for the iridium tools
// in the language of the current user's locale.
package translate

import (
	"fmt"
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("iridium: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer best matching the locales.
// With no locales, en-US is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf translates an en-US Fprintf() format to the writer.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}

// Fprintln writes a translated line to the writer.
func Fprintln(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return fmt.Fprintln(w, printer.Sprintf(key, args...))
}
