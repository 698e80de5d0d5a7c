package wgconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mdp/qrterminal/v3"
	"gopkg.in/yaml.v3"
	"rsc.io/qr"
)

// Format selects how a Document is written.
type Format string

const (
	FormatConf Format = "conf"
	FormatQR   Format = "qr"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted format names for help text.
var Formats = []Format{FormatConf, FormatQR, FormatJSON, FormatYAML}

// ParseFormat accepts a format name or its one-letter alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conf", "c":
		return FormatConf, nil
	case "qr", "q":
		return FormatQR, nil
	case "json", "j":
		return FormatJSON, nil
	case "yaml", "yml", "y":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes doc to w in the given format.
func Render(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatConf:
		return WriteConf(w, doc)
	case FormatQR:
		return WriteQR(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var confTemplate = template.Must(template.New("wg-quick").Funcs(template.FuncMap{
	"join": strings.Join,
	"str":  deref[string],
	"u16":  deref[uint16],
}).Parse(`[Interface]
# {{ .Interface.Node }}
Address = {{ .Interface.Network }}
{{- if .Interface.ListenPort }}
ListenPort = {{ .Interface.ListenPort }}
{{- end }}
PrivateKey = {{ .Interface.PrivateKey }}
{{- if .Interface.MTU }}
MTU = {{ .Interface.MTU }}
{{- end }}
{{- with str .Interface.DNS }}
DNS = {{ . }}
{{- end }}
{{- with str .Interface.PreUp }}
PreUp = {{ . }}
{{- end }}
{{- with str .Interface.PreDown }}
PreDown = {{ . }}
{{- end }}
{{- with str .Interface.PostUp }}
PostUp = {{ . }}
{{- end }}
{{- with str .Interface.PostDown }}
PostDown = {{ . }}
{{- end }}
{{ range .Peers }}
[Peer]
# {{ .Node }}
PublicKey = {{ .PublicKey }}
AllowedIPs = {{ join .AllowedIPs ", " }}
{{- with str .Endpoint }}
Endpoint = {{ . }}
{{- end }}
{{- with u16 .PersistentKeepalive }}
PersistentKeepalive = {{ . }}
{{- end }}
{{ end -}}
`))

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// WriteConf writes doc in wg-quick format. Empty optional values are
// omitted.
func WriteConf(w io.Writer, doc Document) error {
	if err := confTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render wg-quick config: %w", err)
	}
	return nil
}

// Conf returns doc in wg-quick format.
func Conf(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := WriteConf(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteQR writes the wg-quick text of doc as a QR code drawn with half
// blocks, suitable for scanning with the WireGuard mobile apps.
func WriteQR(w io.Writer, doc Document) error {
	text, err := Conf(doc)
	if err != nil {
		return err
	}
	if _, err := qr.Encode(text, qr.L); err != nil {
		return fmt.Errorf("encode qr code: %w", err)
	}
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         w,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return nil
}
