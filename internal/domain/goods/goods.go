package goods

import "fmt"

// Type describes a kind of goods (immutable descriptor from the ruleset).
type Type struct {
	id             string
	storable       bool
	breedingNumber int
}

// NewType creates a goods type descriptor.
func NewType(id string) (*Type, error) {
	if id == "" {
		return nil, fmt.Errorf("goods type id cannot be empty")
	}
	return &Type{id: id, storable: true}, nil
}

// NewBreedableType creates a goods type that reproduces on its own once the
// stock reaches breedingNumber (livestock).
func NewBreedableType(id string, breedingNumber int) (*Type, error) {
	if breedingNumber < 1 {
		return nil, fmt.Errorf("breeding number must be at least 1, got %d", breedingNumber)
	}
	t, err := NewType(id)
	if err != nil {
		return nil, err
	}
	t.breedingNumber = breedingNumber
	return t, nil
}

func (t *Type) ID() string { return t.id }

// Storable reports whether the goods accumulate in the colony warehouse.
func (t *Type) Storable() bool { return t.storable }

// BreedingNumber returns the minimum stock required for auto-reproduction,
// or 0 for goods that do not breed.
func (t *Type) BreedingNumber() int { return t.breedingNumber }

func (t *Type) Breedable() bool { return t.breedingNumber > 0 }

func (t *Type) String() string { return t.id }

// Stack is a typed, quantified amount of goods (immutable value).
type Stack struct {
	goodsType *Type
	amount    int
}

// NewStack creates a stack with validation. Amounts are never negative in
// values exchanged across the domain boundary.
func NewStack(t *Type, amount int) (Stack, error) {
	if t == nil {
		return Stack{}, fmt.Errorf("stack goods type cannot be nil")
	}
	if amount < 0 {
		return Stack{}, fmt.Errorf("stack amount cannot be negative, got %d", amount)
	}
	return Stack{goodsType: t, amount: amount}, nil
}

// StackOf is the infallible constructor for amounts already known to be
// valid (ruleset assembly, computed production results). It panics on
// violations, which indicate a programming error.
func StackOf(t *Type, amount int) Stack {
	s, err := NewStack(t, amount)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Stack) Type() *Type { return s.goodsType }

func (s Stack) Amount() int { return s.amount }

func (s Stack) String() string {
	return fmt.Sprintf("%d %s", s.amount, s.goodsType.ID())
}
