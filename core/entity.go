package core

// Entity is a stable identifier for a simulation record
// Zero is never issued and means "none"
type Entity uint64

// None is the absent entity reference
const None Entity = 0
