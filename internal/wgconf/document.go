// Package wgconf turns a resolved node configuration into the documents
// handed to operators: wg-quick text, JSON, YAML or a terminal QR code.
package wgconf

import "wgc/internal/topology"

// Document is the neutral shape every renderer consumes. Field names are
// stable across output formats.
type Document struct {
	Interface Interface `json:"interface" yaml:"interface"`
	Peers     []Peer    `json:"peers" yaml:"peers"`
}

type Interface struct {
	Node       string  `json:"node" yaml:"node"`
	Network    string  `json:"network" yaml:"network"`
	ListenPort uint16  `json:"listenPort" yaml:"listenPort"`
	PrivateKey string  `json:"privateKey" yaml:"privateKey"`
	MTU        uint16  `json:"mtu" yaml:"mtu"`
	DNS        *string `json:"dns,omitempty" yaml:"dns,omitempty"`
	PreUp      *string `json:"preUp,omitempty" yaml:"preUp,omitempty"`
	PreDown    *string `json:"preDown,omitempty" yaml:"preDown,omitempty"`
	PostUp     *string `json:"postUp,omitempty" yaml:"postUp,omitempty"`
	PostDown   *string `json:"postDown,omitempty" yaml:"postDown,omitempty"`
}

type Peer struct {
	Node                string   `json:"node" yaml:"node"`
	PublicKey           string   `json:"publicKey" yaml:"publicKey"`
	AllowedIPs          []string `json:"allowedIps" yaml:"allowedIps"`
	Endpoint            *string  `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	PersistentKeepalive *uint16  `json:"persistentKeepalive,omitempty" yaml:"persistentKeepalive,omitempty"`
}

// FromConfig maps a resolved configuration onto a Document.
func FromConfig(cfg *topology.Config) Document {
	iface := cfg.Interface
	doc := Document{
		Interface: Interface{
			Node:       iface.Node,
			Network:    iface.Network,
			ListenPort: iface.ListenPort,
			PrivateKey: iface.PrivateKey,
			MTU:        iface.MTU,
			DNS:        iface.DNS,
			PreUp:      iface.PreUp,
			PreDown:    iface.PreDown,
			PostUp:     iface.PostUp,
			PostDown:   iface.PostDown,
		},
		Peers: make([]Peer, 0, len(cfg.Peers)),
	}
	for _, p := range cfg.Peers {
		doc.Peers = append(doc.Peers, Peer{
			Node:                p.Node,
			PublicKey:           p.PublicKey,
			AllowedIPs:          p.AllowedIPs,
			Endpoint:            p.Endpoint,
			PersistentKeepalive: p.PersistentKeepalive,
		})
	}
	return doc
}
