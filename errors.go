package chainmap

// KeyNotFound - Custom error to inform that the key is not present in the map
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that the key was not found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// InvalidIterator - Custom error to inform that an iterator no longer points at an entry,
// either because it was never positioned on one or because the map has changed underneath it
type InvalidIterator struct {
	msg string
}

// Error - Used to notify that an iterator is invalid
func (E InvalidIterator) Error() string {
	if E.msg == "" {
		return "invalid iterator"
	}
	return E.msg
}

// IndexOutOfRange - Custom error to inform that a bucket index is not less than the
// current bucket count
type IndexOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket index is out of range
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "bucket index out of range"
	}
	return E.msg
}

// InvalidConfig - Custom error to inform that a configuration value given at construction
// or policy update is not valid
type InvalidConfig struct {
	msg string
}

// Error - Used to notify that a configuration value is invalid
func (E InvalidConfig) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}
