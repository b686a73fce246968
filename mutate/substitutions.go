package mutate

// Substitutions maps a lowercase letter to its leetspeak replacement
// tokens. Token order matters: the first token is the primary one, used
// when enumeration has to be truncated.
var Substitutions = map[byte][]string{
	'a': {"@", "4"},
	'b': {"8"},
	'c': {"("},
	'e': {"3"},
	'g': {"9"},
	'i': {"1", "!"},
	'o': {"0"},
	's': {"$", "5"},
	't': {"7"},
}
