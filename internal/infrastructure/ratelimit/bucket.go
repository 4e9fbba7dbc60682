package ratelimit

import "time"

// waitInterval es la pausa entre reintentos cuando no quedan tokens
const waitInterval = 500 * time.Millisecond

// Clock abstrae el reloj para poder testear la espera sin tiempo real
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// RefillHook se invoca en cada chequeo de refill, haya refill o no.
// Recibe los tokens disponibles y el tiempo restante hasta el próximo refill.
type RefillHook func(tokens int, untilRefill time.Duration)

// TokenBucket limita la tasa de requests con recarga total por ventana:
// cuando la ventana expira los tokens saltan a capacity, nunca se
// reponen parcialmente. Nace vacío para que el primer Consume fuerce
// el refill inicial. No es seguro para uso concurrente: el proceso es
// estrictamente secuencial.
type TokenBucket struct {
	capacity   int
	tokens     int
	window     time.Duration
	lastRefill time.Time
	clock      Clock
	onCheck    RefillHook
}

// NewTokenBucket crea un bucket vacío con la capacidad y ventana dadas
func NewTokenBucket(capacity int, window time.Duration) *TokenBucket {
	return newTokenBucketWithClock(capacity, window, systemClock{})
}

func newTokenBucketWithClock(capacity int, window time.Duration, clock Clock) *TokenBucket {
	return &TokenBucket{
		capacity: capacity,
		window:   window,
		clock:    clock,
	}
}

// SetRefillHook registra el hook de observación de refills
func (b *TokenBucket) SetRefillHook(hook RefillHook) {
	b.onCheck = hook
}

// Consume bloquea hasta obtener un token y lo descuenta. Si no quedan
// tokens, alterna chequeos de refill con pausas de 500 ms hasta que la
// ventana expire.
func (b *TokenBucket) Consume() {
	for b.tokens == 0 {
		if !b.RefillIfDue() {
			b.clock.Sleep(waitInterval)
		}
	}
	b.tokens--
}

// RefillIfDue recarga el bucket a capacidad total si nunca hubo un
// refill o si la ventana ya expiró. Retorna true solo si recargó.
// El hook registrado se invoca en cada llamada.
func (b *TokenBucket) RefillIfDue() bool {
	now := b.clock.Now()
	refilled := false

	if b.lastRefill.IsZero() || now.Sub(b.lastRefill) >= b.window {
		b.tokens = b.capacity
		b.lastRefill = now
		refilled = true
	}

	if b.onCheck != nil {
		b.onCheck(b.tokens, b.untilRefill(now))
	}

	return refilled
}

// Tokens retorna los tokens disponibles en este momento
func (b *TokenBucket) Tokens() int {
	return b.tokens
}

// UntilRefill retorna cuánto falta para el próximo refill
func (b *TokenBucket) UntilRefill() time.Duration {
	return b.untilRefill(b.clock.Now())
}

func (b *TokenBucket) untilRefill(now time.Time) time.Duration {
	if b.lastRefill.IsZero() {
		return 0
	}
	remaining := b.window - now.Sub(b.lastRefill)
	if remaining < 0 {
		return 0
	}
	return remaining
}
