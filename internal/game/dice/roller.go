package dice

import "go.uber.org/zap"

// Roller is the randomizer handed to the engine. It wraps a Source with the
// closed-range helpers the combat rules are written against and logs every
// expression roll at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller drawing from src and logging to logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// UniformInt returns a uniform int in the closed range [0, maxInclusive].
//
// Precondition: maxInclusive >= 0.
func (r *Roller) UniformInt(maxInclusive int) int {
	return r.src.Intn(maxInclusive + 1)
}

// UniformRange returns a uniform int in the closed range [minInclusive, maxInclusive].
//
// Precondition: minInclusive <= maxInclusive.
func (r *Roller) UniformRange(minInclusive, maxInclusive int) int {
	return minInclusive + r.src.Intn(maxInclusive-minInclusive+1)
}

// Roll evaluates expr and logs the result.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses and rolls expr in one call.
//
// Postcondition: Returns the RollResult or the parse error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}
