package procgen

var (
	namePrefixes = []string{"A", "Ba", "Ce", "Du", "E", "Fa", "Go", "Ha", "I", "Ju", "Ka", "Lo", "Ma", "No", "O", "Pa", "Qu", "Ra", "Sa", "Ta", "U", "Va", "Wa", "Xa", "Ya", "Za"}
	nameMiddles  = []string{"ba", "ca", "da", "fa", "ga", "ha", "ka", "la", "ma", "na", "pa", "ra", "sa", "ta", "va", "xa", "za"}
	nameSuffixes = []string{"a", "ab", "ac", "ad", "al", "am", "an", "ar", "as", "at", "ax", "ay", "az", "e", "en", "er", "es", "et", "i", "ia", "im", "in", "is", "it", "o", "ob", "on", "or", "os", "u", "um", "us"}
	numerals     = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

	resourcePrefixes = []string{"Alu", "Chro", "Cad", "Di", "Emer", "Ferr", "Gal", "Hera", "Indi", "Jav", "Kelo", "Lumi", "Magn", "Nept", "Osm", "Phos", "Quant", "Rad", "Sil", "Trit", "Ura", "Vort", "Warp", "Xen", "Yttr", "Zirk"}
	resourceSuffixes = []string{"ite", "ium", "on", "um", "ine", "ese", "ide", "ane", "ate", "one", "ite", "ark", "ix", "oid", "ene", "yl", "yst", "ian", "alt", "ore"}
)

// Name composes a pronounceable planet or system name on its own stream.
func Name(seed int64) string {
	r := New(seed)
	useMiddle := r.Next() > 0.5

	name := Pick(r, namePrefixes)
	if useMiddle {
		name += Pick(r, nameMiddles)
	}
	name += Pick(r, nameSuffixes)

	if r.Next() > 0.7 {
		name += " " + Pick(r, numerals)
	}
	return name
}

// ResourceName composes an element-like resource name on its own stream.
func ResourceName(seed int64) string {
	r := New(seed)
	prefix := Pick(r, resourcePrefixes)
	return prefix + Pick(r, resourceSuffixes)
}
