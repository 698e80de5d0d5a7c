package declaration

import "wgc/internal/topology"

// fileNetwork mirrors the on-disk document. Public keys and per-node network
// strings are derived and have no field here, so they are ignored on input.
type fileNetwork struct {
	Network             string     `yaml:"network" json:"network" toml:"network"`
	MTU                 uint16     `yaml:"mtu" json:"mtu" toml:"mtu"`
	PreUp               *string    `yaml:"preUp" json:"preUp" toml:"preUp"`
	PreDown             *string    `yaml:"preDown" json:"preDown" toml:"preDown"`
	PostUp              *string    `yaml:"postUp" json:"postUp" toml:"postUp"`
	PostDown            *string    `yaml:"postDown" json:"postDown" toml:"postDown"`
	PersistentKeepalive *uint16    `yaml:"persistentKeepalive" json:"persistentKeepalive" toml:"persistentKeepalive"`
	Servers             []fileNode `yaml:"servers" json:"servers" toml:"servers"`
}

type fileNode struct {
	Node                string      `yaml:"node" json:"node" toml:"node"`
	Address             string      `yaml:"address" json:"address" toml:"address"`
	ListenPort          *uint16     `yaml:"listenPort" json:"listenPort" toml:"listenPort"`
	DNS                 *string     `yaml:"dns" json:"dns" toml:"dns"`
	PrivateKey          string      `yaml:"privateKey" json:"privateKey" toml:"privateKey"`
	PublicAddress       *string     `yaml:"publicAddress" json:"publicAddress" toml:"publicAddress"`
	PreUp               *string     `yaml:"preUp" json:"preUp" toml:"preUp"`
	PreDown             *string     `yaml:"preDown" json:"preDown" toml:"preDown"`
	PostUp              *string     `yaml:"postUp" json:"postUp" toml:"postUp"`
	PostDown            *string     `yaml:"postDown" json:"postDown" toml:"postDown"`
	PersistentKeepalive *uint16     `yaml:"persistentKeepalive" json:"persistentKeepalive" toml:"persistentKeepalive"`
	Routes              []fileRoute `yaml:"routes" json:"routes" toml:"routes"`
}

type fileRoute struct {
	Via                 string   `yaml:"via" json:"via" toml:"via"`
	Routes              []string `yaml:"routes" json:"routes" toml:"routes"`
	Endpoint            *string  `yaml:"endpoint" json:"endpoint" toml:"endpoint"`
	PersistentKeepalive *uint16  `yaml:"persistentKeepalive" json:"persistentKeepalive" toml:"persistentKeepalive"`
}

func (f *fileNetwork) toDeclaration() topology.Declaration {
	d := topology.Declaration{
		Network:             f.Network,
		MTU:                 f.MTU,
		PreUp:               f.PreUp,
		PreDown:             f.PreDown,
		PostUp:              f.PostUp,
		PostDown:            f.PostDown,
		PersistentKeepalive: f.PersistentKeepalive,
		Nodes:               make([]topology.Node, 0, len(f.Servers)),
	}
	for _, s := range f.Servers {
		node := topology.Node{
			Name:                s.Node,
			Address:             s.Address,
			ListenPort:          s.ListenPort,
			DNS:                 s.DNS,
			PrivateKey:          s.PrivateKey,
			PublicAddress:       s.PublicAddress,
			PreUp:               s.PreUp,
			PreDown:             s.PreDown,
			PostUp:              s.PostUp,
			PostDown:            s.PostDown,
			PersistentKeepalive: s.PersistentKeepalive,
		}
		for _, r := range s.Routes {
			node.Routes = append(node.Routes, topology.Route{
				Via:                 r.Via,
				Routes:              r.Routes,
				Endpoint:            r.Endpoint,
				PersistentKeepalive: r.PersistentKeepalive,
			})
		}
		d.Nodes = append(d.Nodes, node)
	}
	return d
}
