package luactor

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ToLua marshals a host value into a Lua value on the given state. Maps and
// slices convert recursively into tables; lua.LValue passes through
// untouched; anything else falls back to its string form.
func ToLua(state *lua.LState, value any) lua.LValue {
	switch v := value.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return v
	case bool:
		return lua.LBool(v)
	case string:
		return lua.LString(v)
	case int:
		return lua.LNumber(v)
	case int8:
		return lua.LNumber(v)
	case int16:
		return lua.LNumber(v)
	case int32:
		return lua.LNumber(v)
	case int64:
		return lua.LNumber(v)
	case uint:
		return lua.LNumber(v)
	case uint8:
		return lua.LNumber(v)
	case uint16:
		return lua.LNumber(v)
	case uint32:
		return lua.LNumber(v)
	case uint64:
		return lua.LNumber(v)
	case float32:
		return lua.LNumber(v)
	case float64:
		return lua.LNumber(v)
	case []any:
		tbl := state.NewTable()
		for _, item := range v {
			tbl.Append(ToLua(state, item))
		}
		return tbl
	case map[string]any:
		tbl := state.NewTable()
		for key, item := range v {
			tbl.RawSetString(key, ToLua(state, item))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprintf("%v", v))
	}
}

// FromLua unmarshals a Lua value into a host value. Tables whose keys are the
// sequence 1..n become []any; all other tables become map[string]any with
// stringified keys.
func FromLua(value lua.LValue) any {
	switch v := value.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return tableFromLua(v)
	default:
		return v.String()
	}
}

func tableFromLua(tbl *lua.LTable) any {
	length := tbl.Len()
	keyCount := 0
	tbl.ForEach(func(lua.LValue, lua.LValue) { keyCount++ })

	if length > 0 && length == keyCount {
		arr := make([]any, 0, length)
		for i := 1; i <= length; i++ {
			arr = append(arr, FromLua(tbl.RawGetInt(i)))
		}
		return arr
	}

	m := make(map[string]any, keyCount)
	tbl.ForEach(func(key, item lua.LValue) {
		m[key.String()] = FromLua(item)
	})
	return m
}
