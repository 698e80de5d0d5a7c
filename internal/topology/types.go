// Package topology validates a network declaration and resolves, for any
// node, the WireGuard interface and peer list that node has to run.
//
// The package is pure: it performs no I/O and never logs. A Declaration is
// turned into an immutable *Network by Build, which can then answer any
// number of Resolve queries.
package topology

// Declaration is the whole network description as written by the operator.
type Declaration struct {
	Network             string
	MTU                 uint16
	PreUp               *string
	PreDown             *string
	PostUp              *string
	PostDown            *string
	PersistentKeepalive *uint16
	Nodes               []Node
}

// Node is one member of the network. Public keys are derived and never part
// of the declaration.
type Node struct {
	Name                string
	Address             string
	ListenPort          *uint16
	DNS                 *string
	PrivateKey          string
	PublicAddress       *string
	PreUp               *string
	PreDown             *string
	PostUp              *string
	PostDown            *string
	PersistentKeepalive *uint16
	Routes              []Route
}

// Route grants reachability to extra address ranges through the node named
// by Via.
type Route struct {
	Via                 string
	Routes              []string
	Endpoint            *string
	PersistentKeepalive *uint16
}

// Interface is the resolved [Interface] section for one node.
type Interface struct {
	Node       string
	Network    string
	ListenPort uint16
	PrivateKey string
	MTU        uint16
	DNS        *string
	PreUp      *string
	PreDown    *string
	PostUp     *string
	PostDown   *string
}

// Peer is one resolved [Peer] section.
type Peer struct {
	Node                string
	PublicKey           string
	AllowedIPs          []string
	Endpoint            *string
	PersistentKeepalive *uint16
}

// Config is everything a node needs to join the network.
type Config struct {
	Interface Interface
	Peers     []Peer
}

// firstSet returns the first non-nil value, walking from the most specific
// level to the least specific one.
func firstSet[T any](levels ...*T) *T {
	for _, v := range levels {
		if v != nil {
			return v
		}
	}
	return nil
}
