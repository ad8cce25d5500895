package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// Every roll is logged at debug level with its audit string, expression,
// dice values, modifier and total, plus the cursor when the Source exposes one.
type Roller struct {
	src    Source
	logger *zap.Logger
}

type cursorSource interface {
	Cursor() int
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	fields := []zap.Field{
		zap.String("roll", result.String()),
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	}
	if cs, ok := r.src.(cursorSource); ok {
		fields = append(fields, zap.Int("cursor", cs.Cursor()))
	}
	r.logger.Debug("dice roll", fields...)
	return result
}
