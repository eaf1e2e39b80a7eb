package document

// Lookup returns the attribute named name, or ok=false when absent.
func (a Attrs) Lookup(name string) (Attr, bool) {
	attr, ok := a[name]
	return attr, ok
}

// Text returns the required rich-text attribute name. loc is the location
// of the owning command, used when the attribute is missing.
func (a Attrs) Text(name string, loc Location) (RichText, error) {
	attr, ok := a[name]
	if !ok {
		return nil, &MissingAttributeError{Name: name, Loc: loc}
	}
	v, ok := attr.Value.(RichText)
	if !ok {
		return nil, &InvalidAttributeTypeError{Name: name, Expected: TypeRichText, Found: attr.Value.Type(), Loc: attr.Loc}
	}
	return v, nil
}

// Str returns the required string attribute name.
func (a Attrs) Str(name string, loc Location) (string, error) {
	attr, ok := a[name]
	if !ok {
		return "", &MissingAttributeError{Name: name, Loc: loc}
	}
	v, ok := attr.Value.(String)
	if !ok {
		return "", &InvalidAttributeTypeError{Name: name, Expected: TypeString, Found: attr.Value.Type(), Loc: attr.Loc}
	}
	return string(v), nil
}

// OptStr returns the string attribute name if present. A present attribute
// of another kind is reported as ok=false, matching how optional
// attributes are filtered by the page handlers.
func (a Attrs) OptStr(name string) (string, bool) {
	attr, ok := a[name]
	if !ok {
		return "", false
	}
	v, ok := attr.Value.(String)
	return string(v), ok
}

// OptInt returns the integer attribute name if present.
func (a Attrs) OptInt(name string) (int64, bool) {
	attr, ok := a[name]
	if !ok {
		return 0, false
	}
	v, ok := attr.Value.(Integer)
	return int64(v), ok
}
