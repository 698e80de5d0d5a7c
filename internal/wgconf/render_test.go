package wgconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"wgc/internal/topology"
)

func ptr[T any](v T) *T { return &v }

func sampleConfig() *topology.Config {
	return &topology.Config{
		Interface: topology.Interface{
			Node:       "gw",
			Network:    "10.0.0.1/24",
			ListenPort: 51820,
			PrivateKey: "dwdtCnMYpX08FsFyUbJmRd9ML4frwJkqsXf7pR25LCo=",
			MTU:        1420,
			DNS:        ptr("10.0.0.53"),
			PostUp:     ptr("iptables -A FORWARD -i %i -j ACCEPT"),
			PostDown:   ptr(""),
		},
		Peers: []topology.Peer{
			{
				Node:                "office",
				PublicKey:           "3p7bfXt9wbTTW2HC7OQ1Nz+DQ8hbeGdNrfx+FG+IK08=",
				AllowedIPs:          []string{"10.0.0.2", "192.168.10.0/24"},
				Endpoint:            ptr("198.51.100.7:51820"),
				PersistentKeepalive: ptr[uint16](25),
			},
			{
				Node:       "laptop",
				PublicKey:  "hSDwCYkwp1R0i33ctD73Wg2/Og0mOBr066SpjqqbTmo=",
				AllowedIPs: []string{"10.0.0.3"},
			},
		},
	}
}

func TestFromConfig(t *testing.T) {
	doc := FromConfig(sampleConfig())

	want := Document{
		Interface: Interface{
			Node:       "gw",
			Network:    "10.0.0.1/24",
			ListenPort: 51820,
			PrivateKey: "dwdtCnMYpX08FsFyUbJmRd9ML4frwJkqsXf7pR25LCo=",
			MTU:        1420,
			DNS:        ptr("10.0.0.53"),
			PostUp:     ptr("iptables -A FORWARD -i %i -j ACCEPT"),
			PostDown:   ptr(""),
		},
		Peers: []Peer{
			{
				Node:                "office",
				PublicKey:           "3p7bfXt9wbTTW2HC7OQ1Nz+DQ8hbeGdNrfx+FG+IK08=",
				AllowedIPs:          []string{"10.0.0.2", "192.168.10.0/24"},
				Endpoint:            ptr("198.51.100.7:51820"),
				PersistentKeepalive: ptr[uint16](25),
			},
			{
				Node:       "laptop",
				PublicKey:  "hSDwCYkwp1R0i33ctD73Wg2/Og0mOBr066SpjqqbTmo=",
				AllowedIPs: []string{"10.0.0.3"},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("FromConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromConfigNoPeers(t *testing.T) {
	doc := FromConfig(&topology.Config{Interface: topology.Interface{Node: "solo"}})
	if doc.Peers == nil {
		t.Fatal("Peers should be an empty slice, not nil")
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc, FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"peers": []`) {
		t.Errorf("JSON output missing empty peers list:\n%s", buf.String())
	}
}

func TestConf(t *testing.T) {
	got, err := Conf(FromConfig(sampleConfig()))
	if err != nil {
		t.Fatalf("Conf() error = %v", err)
	}

	want := `[Interface]
# gw
Address = 10.0.0.1/24
ListenPort = 51820
PrivateKey = dwdtCnMYpX08FsFyUbJmRd9ML4frwJkqsXf7pR25LCo=
MTU = 1420
DNS = 10.0.0.53
PostUp = iptables -A FORWARD -i %i -j ACCEPT

[Peer]
# office
PublicKey = 3p7bfXt9wbTTW2HC7OQ1Nz+DQ8hbeGdNrfx+FG+IK08=
AllowedIPs = 10.0.0.2, 192.168.10.0/24
Endpoint = 198.51.100.7:51820
PersistentKeepalive = 25

[Peer]
# laptop
PublicKey = hSDwCYkwp1R0i33ctD73Wg2/Og0mOBr066SpjqqbTmo=
AllowedIPs = 10.0.0.3
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Conf() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfMinimal(t *testing.T) {
	got, err := Conf(Document{Interface: Interface{Node: "solo", Network: "10.0.0.9/24", PrivateKey: "k"}})
	if err != nil {
		t.Fatalf("Conf() error = %v", err)
	}
	want := "[Interface]\n# solo\nAddress = 10.0.0.9/24\nPrivateKey = k\n"
	if got != want {
		t.Errorf("Conf() = %q, want %q", got, want)
	}
}

func TestRenderStructured(t *testing.T) {
	doc := FromConfig(sampleConfig())

	t.Run("json round trips field names", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, doc, FormatJSON); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var raw map[string]any
		if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		iface := raw["interface"].(map[string]any)
		for _, key := range []string{"node", "network", "listenPort", "privateKey", "mtu", "postUp"} {
			if _, ok := iface[key]; !ok {
				t.Errorf("interface missing %q", key)
			}
		}
		if _, ok := iface["preUp"]; ok {
			t.Error("absent preUp should be omitted")
		}
		peer := raw["peers"].([]any)[0].(map[string]any)
		for _, key := range []string{"node", "publicKey", "allowedIps", "endpoint", "persistentKeepalive"} {
			if _, ok := peer[key]; !ok {
				t.Errorf("peer missing %q", key)
			}
		}
	})

	t.Run("yaml decodes back", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, doc, FormatYAML); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var got Document
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Errorf("yaml mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("qr writes blocks", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, doc, FormatQR); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if !strings.Contains(buf.String(), qrtermBlock) {
			t.Errorf("QR output has no block characters:\n%s", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := Render(&bytes.Buffer{}, doc, Format("xml")); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("Render() error = %v, want ErrUnknownFormat", err)
		}
	})
}

func TestWriteQRTooLarge(t *testing.T) {
	doc := FromConfig(sampleConfig())
	doc.Interface.PostUp = ptr(strings.Repeat("x", 4000))
	if err := WriteQR(&bytes.Buffer{}, doc); err == nil {
		t.Fatal("WriteQR() expected error for oversized config")
	}
}

// qrtermBlock is the full block used by half-block rendering.
const qrtermBlock = "█"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "conf", want: FormatConf},
		{in: "c", want: FormatConf},
		{in: "QR", want: FormatQR},
		{in: "q", want: FormatQR},
		{in: "json", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: "ini", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
