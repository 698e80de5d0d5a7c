package topology

import (
	"errors"
	"fmt"
	"net/netip"

	"wgc/internal/check"
	"wgc/internal/keys"
)

// Network is a validated declaration together with the data derived from
// it. It is immutable and safe for concurrent use.
type Network struct {
	decl       Declaration
	idx        *index
	publicKeys []string
}

// Build validates d and derives the public key of every node. Duplicate
// private keys are rejected before any derivation runs; a malformed key is
// reported against the node that carries it and wraps
// keys.ErrInvalidKeyEncoding.
//
// Build takes ownership of d; the caller must not modify it afterwards.
func Build(d Declaration) (*Network, error) {
	idx, err := validate(d)
	if err != nil {
		return nil, err
	}

	private := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		private[i] = n.PrivateKey
	}
	public, err := keys.DeriveAll(private)
	if err != nil {
		var de *keys.DeriveError
		if errors.As(err, &de) {
			return nil, fmt.Errorf("derive public key for node %q: %w", d.Nodes[de.Index].Name, de.Err)
		}
		return nil, fmt.Errorf("derive public keys: %w", err)
	}

	check.Invariant(len(public) == len(d.Nodes), "derived %d public keys for %d nodes", len(public), len(d.Nodes))
	return &Network{decl: d, idx: idx, publicKeys: public}, nil
}

// Prefix returns the network CIDR.
func (n *Network) Prefix() netip.Prefix {
	return n.idx.prefix
}

// Declaration returns the declaration the network was built from. The
// result shares memory with the network and must not be modified.
func (n *Network) Declaration() Declaration {
	return n.decl
}

// Nodes returns node names in declaration order.
func (n *Network) Nodes() []string {
	names := make([]string, len(n.decl.Nodes))
	for i, node := range n.decl.Nodes {
		names[i] = node.Name
	}
	return names
}

// Node returns the declared node with the given name.
func (n *Network) Node(name string) (Node, bool) {
	i, ok := n.idx.byName[name]
	if !ok {
		return Node{}, false
	}
	return n.decl.Nodes[i], true
}

// PublicKey returns the derived public key of the named node.
func (n *Network) PublicKey(name string) (string, bool) {
	i, ok := n.idx.byName[name]
	if !ok {
		return "", false
	}
	return n.publicKeys[i], true
}
