package names

import "strings"

// StripGlobalNS removes the leading global-namespace marker.
func StripGlobalNS(name string) string {
	return strings.TrimPrefix(name, "\\")
}

// StripNS removes everything up to and including the last namespace
// separator, leaving the unqualified name.
func StripNS(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// IsXHP reports whether an unqualified name is an XHP element name.
func IsXHP(name string) bool {
	return strings.HasPrefix(name, ":")
}

// PrefixNamespace qualifies s under ns.
func PrefixNamespace(ns, s string) string {
	return ns + "\\" + s
}

// Mangle produces the canonical enforcement form of a namespace-qualified
// class name: the global-namespace marker is stripped, and XHP element
// names get the xhp_ encoding (":" becomes "__", "-" becomes "_").
// Closure names are left untouched.
func Mangle(name string) string {
	name = StripGlobalNS(name)
	if strings.HasPrefix(name, "Closure$") {
		return name
	}
	ns := ""
	local := name
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		ns = name[:i+1]
		local = name[i+1:]
	}
	if !IsXHP(local) {
		return name
	}
	local = "xhp_" + local[1:]
	local = strings.ReplaceAll(local, "-", "_")
	local = strings.ReplaceAll(local, ":", "__")
	return ns + local
}

// Unmangled undoes the XHP encoding of Mangle for display purposes.
// Non-XHP names pass through with the global-namespace marker stripped.
func Unmangled(name string) string {
	name = StripGlobalNS(name)
	ns := ""
	local := name
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		ns = name[:i+1]
		local = name[i+1:]
	}
	if !strings.HasPrefix(local, "xhp_") {
		return name
	}
	local = ":" + local[len("xhp_"):]
	local = strings.ReplaceAll(local, "__", ":")
	local = strings.ReplaceAll(local, "_", "-")
	return ns + local
}
