package element

import "github.com/devicelab-dev/xcuikit/pkg/uitree"

// Proxies parses elem's debug description into flat node records.
func Proxies(elem Element) []uitree.Node {
	return uitree.Parse(elem.DebugDescription())
}

// ProxiesString renders Proxies one node per line.
func ProxiesString(elem Element) string {
	return uitree.Describe(Proxies(elem))
}
