package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the engine table into L:
//
//	engine.narrate(text)      writes a script line to the encounter narration
//	engine.roll(expr)         rolls a dice expression and returns its total
//	engine.log.<level>(msg)   logs at debug, info, warn or error
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "narrate", L.NewFunction(m.luaNarrate))
	L.SetField(engine, "roll", L.NewFunction(m.luaRoll))

	logTbl := L.NewTable()
	for name, fn := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	} {
		L.SetField(logTbl, name, L.NewFunction(luaLog(fn)))
	}
	L.SetField(engine, "log", logTbl)

	L.SetGlobal("engine", engine)
}

func (m *Manager) luaNarrate(L *lua.LState) int {
	text := L.CheckString(1)
	if m.Narrate != nil {
		m.Narrate(text)
	}
	return 0
}

func (m *Manager) luaRoll(L *lua.LState) int {
	expr := L.CheckString(1)
	res, err := m.roller.RollExpr(expr)
	if err != nil {
		L.RaiseError("engine.roll: %s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(res.Total()))
	return 1
}

func luaLog(fn func(string, ...zap.Field)) lua.LGFunction {
	return func(L *lua.LState) int {
		fn(L.CheckString(1), zap.String("source", "lua"))
		return 0
	}
}
