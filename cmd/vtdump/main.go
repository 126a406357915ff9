// Command vtdump feeds a byte stream through vtparse and prints the
// recognized events, one per line. It reads stdin by default, or drives a
// subcommand through a pseudo-terminal with --pty so the subcommand sees a
// real tty and emits the same escape sequences it would on an interactive
// terminal.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/mmastrac/vtparse"
)

var (
	flInputMode = flag.Bool("input-mode", false, "Parse as an input-mode stream (SS2/SS3, bracketed paste) instead of an output-mode stream")
	flPty       = flag.Bool("pty", false, "Run the remaining arguments as a subcommand inside a pseudo-terminal and dump its output")
	flNoColor   = flag.Bool("no-color", false, "Disable colorized event kinds even when stdout is a terminal")
	flQuiet     = flag.Bool("quiet", false, "Print only the event kind, not the decoded payload")
)

var (
	kindColor  = color.New(color.FgCyan).SprintFunc()
	byteColor  = color.New(color.FgYellow).SprintFunc()
	textColor  = color.New(color.FgGreen).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()
)

func main() {
	flag.Parse()

	useColor := !*flNoColor && isatty.IsTerminal(os.Stdout.Fd())
	if !useColor {
		color.NoColor = true
	}

	var opts []vtparse.Option
	if *flInputMode {
		opts = append(opts, vtparse.WithInputMode())
	}
	p := vtparse.NewParser(opts...)

	var src io.Reader
	if *flPty {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "vtdump --pty requires a command to run")
			os.Exit(2)
		}
		f, err := startPty(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorColor(fmt.Sprintf("vtdump: %v", err)))
			os.Exit(1)
		}
		defer f.Close()
		src = f
	} else {
		src = os.Stdin
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	sink := func(e vtparse.Event) {
		printEvent(w, e)
	}

	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			p.Feed(buf[:n], sink)
		}
		if err != nil {
			break
		}
	}
	p.Finish(sink)
}

func startPty(args []string) (*os.File, error) {
	cmd := exec.Command(args[0], args[1:]...)
	f, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting pty: %w", err)
	}
	return f, nil
}

func printEvent(w io.Writer, e vtparse.Event) {
	if *flQuiet {
		fmt.Fprintln(w, kindColor(e.Kind.String()))
		return
	}
	switch e.Kind {
	case vtparse.EventRaw, vtparse.EventOscData, vtparse.EventDcsData:
		fmt.Fprintf(w, "%s %s\n", kindColor(e.Kind.String()), textColor(fmt.Sprintf("%q", e.Bytes)))
	case vtparse.EventC0, vtparse.EventSs2, vtparse.EventSs3:
		fmt.Fprintf(w, "%s %s\n", kindColor(e.Kind.String()), byteColor(describeByte(e.Byte)))
	case vtparse.EventEsc:
		fmt.Fprintf(w, "%s intermediates=%q final=%s\n", kindColor(e.Kind.String()), e.Intermediates, byteColor(fmt.Sprintf("0x%02X", e.Byte)))
	case vtparse.EventCsi, vtparse.EventDcsStart:
		private := "none"
		if e.HasPrivate {
			private = string(e.Private)
		}
		fmt.Fprintf(w, "%s private=%s params=%v intermediates=%q final=%s\n",
			kindColor(e.Kind.String()), private, paramStrings(e.Params), e.Intermediates, byteColor(fmt.Sprintf("0x%02X", e.Byte)))
	default:
		fmt.Fprintln(w, kindColor(e.Kind.String()))
	}
}

// c0Names maps a C0 control byte back to its short mnemonic, used to make
// EventC0 output readable instead of a bare hex byte.
var c0Names = map[byte]string{
	vtparse.C0.NUL: "NUL", vtparse.C0.BEL: "BEL", vtparse.C0.BS: "BS",
	vtparse.C0.HT: "HT", vtparse.C0.LF: "LF", vtparse.C0.VT: "VT",
	vtparse.C0.FF: "FF", vtparse.C0.CR: "CR", vtparse.C0.CAN: "CAN",
	vtparse.C0.SUB: "SUB", vtparse.C0.ESC: "ESC",
}

func describeByte(b byte) string {
	if name, ok := c0Names[b]; ok {
		return fmt.Sprintf("0x%02X (%s)", b, name)
	}
	return fmt.Sprintf("0x%02X", b)
}

func paramStrings(params [][]byte) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = string(p)
	}
	return out
}
