package sim

import (
	"errors"
	"strconv"
	"strings"
)

// A Name is a hierarchical name such as "Node[3].Link[1]". Tokens are
// separated by dots.
type Name struct {
	Tokens []NameToken
}

// NameToken is one level of a Name. "Link[1]" has the element name "Link"
// and the index [1].
type NameToken struct {
	ElemName string
	Index    []int
}

var (
	errUnbalancedBracket = errors.New("brackets do not match")
	errBadIndex          = errors.New("index must be an integer")
	errEmptyElement      = errors.New("element must not be empty")
	errLowercaseElement  = errors.New("element must start with a capital letter")
	errBadCharacter      = errors.New("element contains an invalid character")
)

// ParseName splits a name into its tokens.
func ParseName(name string) (Name, error) {
	parts := strings.Split(name, ".")
	n := Name{Tokens: make([]NameToken, 0, len(parts))}

	for _, part := range parts {
		token, err := parseNameToken(part)
		if err != nil {
			return Name{}, err
		}

		n.Tokens = append(n.Tokens, token)
	}

	return n, nil
}

func parseNameToken(s string) (NameToken, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if strings.ContainsRune(s, ']') {
			return NameToken{}, errUnbalancedBracket
		}

		return NameToken{ElemName: s}, nil
	}

	token := NameToken{ElemName: s[:open]}
	rest := s[open:]

	for rest != "" {
		if rest[0] != '[' {
			return NameToken{}, errUnbalancedBracket
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return NameToken{}, errUnbalancedBracket
		}

		index, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return NameToken{}, errBadIndex
		}

		token.Index = append(token.Index, index)
		rest = rest[end+1:]
	}

	return token, nil
}

// NameMustBeValid panics if the name is not a dot-separated list of
// capitalized elements with optional integer indices.
func NameMustBeValid(name string) {
	n, err := ParseName(name)
	if err == nil {
		for _, token := range n.Tokens {
			if err = token.validate(); err != nil {
				break
			}
		}
	}

	if err != nil {
		panic("name " + strconv.Quote(name) + " is not valid: " + err.Error())
	}
}

func (t NameToken) validate() error {
	if t.ElemName == "" {
		return errEmptyElement
	}

	if strings.ContainsAny(t.ElemName, "_\"'- ") {
		return errBadCharacter
	}

	if t.ElemName[0] < 'A' || t.ElemName[0] > 'Z' {
		return errLowercaseElement
	}

	return nil
}

// BuildName joins a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex joins a parent name and an indexed element name, for
// example BuildNameWithIndex("Node[0]", "Link", 2) is "Node[0].Link[2]".
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
