package name

// Names holds the well-known names every compilation refers to, interned up
// front into one table.
type Names struct {
	Table *Table

	// punctuation
	Asterisk  Name
	Comma     Name
	Empty     Name
	Hyphen    Name
	One       Name
	Period    Name
	Semicolon Name
	Slash     Name

	// keywords
	Class   Name
	Default Name
	Super   Name
	This    Name

	// synthetic and member names
	Any        Name
	Clinit     Name
	Error      Name
	Init       Name
	Lambda     Name
	Length     Name
	Value      Name
	ValueOf    Name
	Values     Name
	ToString   Name
	HashCode   Name
	Equals     Name
	Iterator   Name
	HasNext    Name
	Next       Name
	Close      Name
	Ordinal    Name
	Underscore Name

	// well-known classes
	JavaLang          Name
	JavaLangObject    Name
	JavaLangString    Name
	JavaLangEnum      Name
	JavaLangClass     Name
	JavaLangAutoClose Name
}

// NewNames interns the well-known names into t.
func NewNames(t *Table) *Names {
	return &Names{
		Table: t,

		Asterisk:  t.FromString("*"),
		Comma:     t.FromString(","),
		Empty:     t.FromString(""),
		Hyphen:    t.FromString("-"),
		One:       t.FromString("1"),
		Period:    t.FromString("."),
		Semicolon: t.FromString(";"),
		Slash:     t.FromString("/"),

		Class:   t.FromString("class"),
		Default: t.FromString("default"),
		Super:   t.FromString("super"),
		This:    t.FromString("this"),

		Any:        t.FromString("<any>"),
		Clinit:     t.FromString("<clinit>"),
		Error:      t.FromString("<error>"),
		Init:       t.FromString("<init>"),
		Lambda:     t.FromString("lambda$"),
		Length:     t.FromString("length"),
		Value:      t.FromString("value"),
		ValueOf:    t.FromString("valueOf"),
		Values:     t.FromString("values"),
		ToString:   t.FromString("toString"),
		HashCode:   t.FromString("hashCode"),
		Equals:     t.FromString("equals"),
		Iterator:   t.FromString("iterator"),
		HasNext:    t.FromString("hasNext"),
		Next:       t.FromString("next"),
		Close:      t.FromString("close"),
		Ordinal:    t.FromString("ordinal"),
		Underscore: t.FromString("_"),

		JavaLang:          t.FromString("java.lang"),
		JavaLangObject:    t.FromString("java.lang.Object"),
		JavaLangString:    t.FromString("java.lang.String"),
		JavaLangEnum:      t.FromString("java.lang.Enum"),
		JavaLangClass:     t.FromString("java.lang.Class"),
		JavaLangAutoClose: t.FromString("java.lang.AutoCloseable"),
	}
}

// FromString interns s into the table backing n.
func (n *Names) FromString(s string) Name {
	return n.Table.FromString(s)
}

// FromChars interns cs[start:start+length] into the table backing n.
func (n *Names) FromChars(cs []rune, start, length int) Name {
	return n.Table.FromChars(cs, start, length)
}

// FromUtf interns b into the table backing n.
func (n *Names) FromUtf(b []byte) Name {
	return n.Table.FromUtf(b)
}

// Dispose returns the backing table to its pool.
func (n *Names) Dispose() {
	n.Table.Dispose()
}
