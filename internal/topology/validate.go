package topology

import (
	"net/netip"
)

// index is what validation learns about a declaration: parsed values and
// name references resolved to node positions. Build carries it into the
// Network so resolution never re-interprets names.
type index struct {
	prefix  netip.Prefix
	addrs   []netip.Addr
	byName  map[string]int
	targets [][]int // targets[node][route] is the position of the via node
}

// Validate checks every structural and referential invariant of d and
// returns the first violation as a *ValidationError. Key material is not
// inspected. d is not modified.
func Validate(d Declaration) error {
	_, err := validate(d)
	return err
}

func validate(d Declaration) (*index, error) {
	if d.Network == "" {
		return nil, &ValidationError{Err: ErrMissingNetwork}
	}
	prefix, err := netip.ParsePrefix(d.Network)
	if err != nil {
		return nil, invalid(ErrMalformedNetwork, "", "%v", err)
	}

	if len(d.Nodes) == 0 {
		return nil, &ValidationError{Err: ErrNoNodes}
	}

	idx := &index{
		prefix: prefix,
		addrs:  make([]netip.Addr, len(d.Nodes)),
		byName: make(map[string]int, len(d.Nodes)),
	}

	for i, n := range d.Nodes {
		if n.Name == "" {
			return nil, invalid(ErrMissingNodeName, "", "node #%d", i+1)
		}
		if _, dup := idx.byName[n.Name]; dup {
			return nil, &ValidationError{Err: ErrDuplicateNodeName, Node: n.Name}
		}
		idx.byName[n.Name] = i
	}

	for i, n := range d.Nodes {
		addr, err := netip.ParseAddr(n.Address)
		if err != nil {
			return nil, invalid(ErrMalformedAddress, n.Name, "%v", err)
		}
		if addr.Zone() != "" {
			return nil, invalid(ErrMalformedAddress, n.Name, "address %s has a zone", n.Address)
		}
		idx.addrs[i] = addr
	}

	seenAddr := make(map[netip.Addr]string, len(d.Nodes))
	for i, n := range d.Nodes {
		if other, dup := seenAddr[idx.addrs[i]]; dup {
			return nil, invalid(ErrDuplicateAddress, n.Name, "address %s already used by node %q", idx.addrs[i], other)
		}
		seenAddr[idx.addrs[i]] = n.Name
	}

	for i, n := range d.Nodes {
		if !prefix.Contains(idx.addrs[i]) {
			return nil, invalid(ErrAddressOutOfNetwork, n.Name, "address %s is not in network %s", idx.addrs[i], prefix)
		}
	}

	seenKey := make(map[string]string, len(d.Nodes))
	for _, n := range d.Nodes {
		if other, dup := seenKey[n.PrivateKey]; dup {
			return nil, invalid(ErrDuplicatePrivateKey, n.Name, "same private key as node %q", other)
		}
		seenKey[n.PrivateKey] = n.Name
	}

	idx.targets = make([][]int, len(d.Nodes))
	for i, n := range d.Nodes {
		if len(n.Routes) == 0 {
			continue
		}
		targets := make([]int, len(n.Routes))
		for j, r := range n.Routes {
			if r.Via == n.Name {
				return nil, invalid(ErrUnknownRouteTarget, n.Name, "route via %q points at the node itself", r.Via)
			}
			t, ok := idx.byName[r.Via]
			if !ok {
				return nil, invalid(ErrUnknownRouteTarget, n.Name, "route via %q: no such node", r.Via)
			}
			targets[j] = t
		}
		idx.targets[i] = targets
	}

	return idx, nil
}
