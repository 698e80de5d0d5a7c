package topology

import (
	"testing"

	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

// testPrivKey generates a fresh WireGuard private key string for use in tests.
func testPrivKey(t testing.TB) string {
	t.Helper()
	key, err := wgtypes.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("GeneratePrivateKey() error = %v", err)
	}
	return key.String()
}

func testPubKey(t testing.TB, private string) string {
	t.Helper()
	key, err := wgtypes.ParseKey(private)
	if err != nil {
		t.Fatalf("ParseKey() error = %v", err)
	}
	return key.PublicKey().String()
}

func ptr[T any](v T) *T { return &v }

// twoNodes returns the A/B declaration used across tests:
// 10.0.0.0/24 with A at .1 routing 192.168.1.0/24 via B at .2.
func twoNodes(t testing.TB) Declaration {
	t.Helper()
	return Declaration{
		Network: "10.0.0.0/24",
		MTU:     1420,
		Nodes: []Node{
			{
				Name:       "A",
				Address:    "10.0.0.1",
				PrivateKey: testPrivKey(t),
				Routes: []Route{
					{Via: "B", Routes: []string{"10.0.0.2/32", "192.168.1.0/24"}},
				},
			},
			{
				Name:       "B",
				Address:    "10.0.0.2",
				PrivateKey: testPrivKey(t),
			},
		},
	}
}

func mustBuild(t testing.TB, d Declaration) *Network {
	t.Helper()
	n, err := Build(d)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return n
}
