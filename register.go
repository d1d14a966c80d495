package attiny861

// Register is an 8 bit register at a fixed location. SetBits and
// ClearBits are a plain load, modify and store. They are not atomic and
// must not be used on PINx, where storing ones toggles PORTx.
type Register interface {
	Get() uint8
	Set(value uint8)
	SetBits(mask uint8)
	ClearBits(mask uint8)
}
