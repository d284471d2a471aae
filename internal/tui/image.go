package tui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// TerminalImageProtocol represents the image protocol supported by the terminal
type TerminalImageProtocol int

// Terminal image protocol types
const (
	// ProtocolNone indicates no image protocol support
	ProtocolNone TerminalImageProtocol = iota
	// ProtocolKitty indicates Kitty terminal graphics protocol
	ProtocolKitty
	// ProtocolITerm2 indicates iTerm2 inline images protocol
	ProtocolITerm2
)

// DetectImageProtocol detects which terminal image protocol is supported.
func DetectImageProtocol() TerminalImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")
	term := os.Getenv("TERM")

	if strings.Contains(term, "kitty") {
		return ProtocolKitty
	}

	// Ghostty speaks the Kitty protocol
	if termProgram == "ghostty" {
		return ProtocolKitty
	}

	if termProgram == "iTerm.app" {
		return ProtocolITerm2
	}

	return ProtocolNone
}

// RenderInlineImageBytes renders image data inline using the terminal's protocol.
// Returns the terminal escape sequences to display the image, or empty string
// when the protocol is unsupported or there is no data.
func RenderInlineImageBytes(data []byte, protocol TerminalImageProtocol) string {
	if len(data) == 0 {
		return ""
	}

	switch protocol {
	case ProtocolKitty:
		return renderKittyImage(data)
	case ProtocolITerm2:
		return renderITerm2Image(data)
	}

	return ""
}

// kittyChunkSize is the largest payload Kitty accepts in one escape.
const kittyChunkSize = 4096

// renderKittyImage uses Kitty's graphics protocol with direct transmission.
// The base64 payload is split into chunks; every chunk but the last carries m=1.
// Format: \x1b_Ga=T,f=100,t=d,r=<rows>,m=1;<chunk>\x1b\\ ... \x1b_Gm=0;<chunk>\x1b\\
func renderKittyImage(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	first := true
	for len(encoded) > 0 {
		n := min(kittyChunkSize, len(encoded))
		chunk := encoded[:n]
		encoded = encoded[n:]

		more := 0
		if len(encoded) > 0 {
			more = 1
		}
		if first {
			fmt.Fprintf(&b, "\x1b_Ga=T,f=100,t=d,r=%d,m=%d;%s\x1b\\", posterRows, more, chunk)
			first = false
		} else {
			fmt.Fprintf(&b, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
	return b.String()
}

// renderITerm2Image uses iTerm2's inline images protocol
// Format: \x1b]1337;File=inline=1:<base64>\x07
func renderITerm2Image(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("\x1b]1337;File=inline=1;width=30;preserveAspectRatio=1:%s\x07", encoded)
}
