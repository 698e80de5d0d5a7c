package topology

import (
	"fmt"
	"strconv"

	"wgc/internal/check"
)

// Resolve computes the interface and peer list for the named node.
//
// Route peers come first, one per route in declaration order, even when two
// routes share a target. With includeAll every other node not already present
// is appended in declaration order.
func (n *Network) Resolve(name string, includeAll bool) (*Config, error) {
	self, ok := n.idx.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	cfg := &Config{
		Interface: n.resolveInterface(self),
		Peers:     make([]Peer, 0, len(n.decl.Nodes)),
	}

	node := n.decl.Nodes[self]
	present := make(map[int]bool, len(node.Routes))
	for j, route := range node.Routes {
		target := n.idx.targets[self][j]
		check.Invariant(target != self, "node %q routes via itself", name)
		cfg.Peers = append(cfg.Peers, n.routePeer(target, route))
		present[target] = true
	}

	if includeAll {
		for i := range n.decl.Nodes {
			if i == self || present[i] {
				continue
			}
			cfg.Peers = append(cfg.Peers, n.nodePeer(i))
		}
	}

	return cfg, nil
}

func (n *Network) resolveInterface(i int) Interface {
	node := n.decl.Nodes[i]
	var port uint16
	if node.ListenPort != nil {
		port = *node.ListenPort
	}
	return Interface{
		Node:       node.Name,
		Network:    node.Address + "/" + strconv.Itoa(n.idx.prefix.Bits()),
		ListenPort: port,
		PrivateKey: node.PrivateKey,
		MTU:        n.decl.MTU,
		DNS:        node.DNS,
		PreUp:      firstSet(node.PreUp, n.decl.PreUp),
		PreDown:    firstSet(node.PreDown, n.decl.PreDown),
		PostUp:     firstSet(node.PostUp, n.decl.PostUp),
		PostDown:   firstSet(node.PostDown, n.decl.PostDown),
	}
}

func (n *Network) routePeer(target int, route Route) Peer {
	node := n.decl.Nodes[target]
	allowed := make([]string, 0, 1+len(route.Routes))
	allowed = append(allowed, node.Address)
	allowed = append(allowed, route.Routes...)
	return Peer{
		Node:                node.Name,
		PublicKey:           n.publicKeys[target],
		AllowedIPs:          allowed,
		Endpoint:            firstSet(route.Endpoint, node.PublicAddress),
		PersistentKeepalive: firstSet(route.PersistentKeepalive, node.PersistentKeepalive),
	}
}

// nodePeer builds a peer for a node reached without a route. Keepalive comes
// from the node alone, never from the global setting.
func (n *Network) nodePeer(i int) Peer {
	node := n.decl.Nodes[i]
	return Peer{
		Node:                node.Name,
		PublicKey:           n.publicKeys[i],
		AllowedIPs:          []string{node.Address},
		Endpoint:            node.PublicAddress,
		PersistentKeepalive: node.PersistentKeepalive,
	}
}
