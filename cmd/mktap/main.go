package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"zxhost/tape"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input file (raw binary, 6912-byte SCREEN$, .bmp or .tap).")
		outPath = flag.String("out", "", "Output .tap file (code, screen and image modes).")
		mode    = flag.String("mode", "code", "code|screen|image|list.")
		name    = flag.String("name", "", "Tape file name (defaults to the input base name).")
		start   = flag.Uint("start", 0x8000, "Load address (code mode only).")
	)
	flag.Parse()

	if *inPath == "" || (*outPath == "" && *mode != "list") {
		fatalf("usage: mktap -mode code -in prog.bin -out prog.tap [-start 32768] [-name prog]\n" +
			"       mktap -mode screen -in pic.scr -out pic.tap\n" +
			"       mktap -mode image -in pic.bmp -out pic.tap\n" +
			"       mktap -mode list -in prog.tap")
	}
	if *name == "" {
		*name = baseName(*inPath)
	}

	var err error
	switch strings.ToLower(*mode) {
	case "code":
		if *start > 0xFFFF {
			fatalf("start out of range: %d", *start)
		}
		err = writeCode(*inPath, *outPath, *name, uint16(*start))
	case "screen":
		err = writeScreen(*inPath, *outPath, *name)
	case "image":
		err = writeImage(*inPath, *outPath, *name)
	case "list":
		err = listTape(*inPath, os.Stdout)
	default:
		fatalf("unknown mode: %s", *mode)
	}
	if err != nil {
		fatalf("%s: %v", *mode, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndexByte(path, '.'); i > 0 {
		path = path[:i]
	}
	if len(path) > 10 {
		path = path[:10]
	}
	return path
}

func writeTAP(outPath, name string, start uint16, data []byte) error {
	if len(data) > 0xFFFF {
		return fmt.Errorf("data too large: %d bytes", len(data))
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	bw := bufio.NewWriter(out)
	if err := tape.NewWriter(bw).WriteCode(name, start, data); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return out.Close()
}

func writeCode(inPath, outPath, name string, start uint16) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	if int(start)+len(data) > 0x10000 {
		return fmt.Errorf("%d bytes at %#04x run past the top of memory", len(data), start)
	}
	return writeTAP(outPath, name, start, data)
}

func writeScreen(inPath, outPath, name string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	if len(data) != tape.ScreenLen {
		return fmt.Errorf("screen is %d bytes, want %d", len(data), tape.ScreenLen)
	}
	return writeTAP(outPath, name, tape.ScreenStart, data)
}

func writeImage(inPath, outPath, name string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	scr, err := screenFromBMP(in)
	if err != nil {
		return err
	}
	return writeTAP(outPath, name, tape.ScreenStart, scr)
}

func listTape(inPath string, w io.Writer) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	return list(bufio.NewReader(in), w)
}

func list(r io.Reader, w io.Writer) error {
	tr := tape.NewReader(r, nil)
	for i := 0; ; i++ {
		b, err := tr.Next()
		if tape.IsEnd(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if !b.IsHeader() {
			fmt.Fprintf(w, "%3d  data    flag=%#02x len=%d\n", i, b.Flag, len(b.Payload))
			continue
		}
		h, err := tape.ParseHeader(b.Payload)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		fmt.Fprintf(w, "%3d  header  %-8s %-10q len=%d param1=%#04x param2=%#04x\n",
			i, typeName(h.Type), h.Filename(), h.Length, h.Param1, h.Param2)
	}
}

func typeName(t uint8) string {
	switch t {
	case tape.TypeProgram:
		return "program"
	case tape.TypeNumArray:
		return "numbers"
	case tape.TypeCharArray:
		return "chars"
	case tape.TypeCode:
		return "code"
	}
	return "unknown"
}
