package main

import (
	"encoding/json"
	"fmt"
	"os"

	"dvmverify/opcode"
	"dvmverify/regtype"
	"dvmverify/resolver"
	"dvmverify/verifyflow"
)

// Fixture is the on-disk JSON shape a verify/optimize/regmap invocation
// reads: a method body plus the fake resolver's class/field/method tables.
// Real DEX parsing and class loading are out of scope, so fixtures are
// this driver's only input format.
type Fixture struct {
	Method   MethodFixture   `json:"method"`
	Resolver ResolverFixture `json:"resolver"`
}

type MethodFixture struct {
	ID             string        `json:"id"`
	DeclaringClass uint32        `json:"declaring_class"`
	SuperClass     uint32        `json:"super_class"`
	RegistersSize  int           `json:"registers_size"`
	InsSize        int           `json:"ins_size"`
	OutsSize       int           `json:"outs_size"`
	Code           []uint16      `json:"code"`
	Tries          []TryFixture  `json:"tries"`
	ParamShorty    string        `json:"param_shorty"`
	ParamClasses   []uint32      `json:"param_classes"`
	ReturnShorty   string        `json:"return_shorty"`
	ReturnClass    uint32        `json:"return_class"`
	Access         []string      `json:"access"`
}

type TryFixture struct {
	StartAddr int               `json:"start_addr"`
	EndAddr   int               `json:"end_addr"`
	Handlers  []HandlerFixture  `json:"handlers"`
}

type HandlerFixture struct {
	Addr      int    `json:"addr"`
	CatchType uint32 `json:"catch_type"`
	CatchAll  bool   `json:"catch_all"`
}

// ResolverFixture populates a resolver.Fake: classes keyed by handle,
// fields and methods keyed by the reference index a fixture's bytecode
// uses, and the type-index table const-string/const-class/check-cast/etc.
// instructions consult.
type ResolverFixture struct {
	Classes        []ClassFixture        `json:"classes"`
	Fields         []FieldFixture        `json:"fields"`
	Methods        []MethodRefFixture    `json:"methods"`
	ClassByTypeIdx map[string]uint32     `json:"class_by_type_idx"`
	StringClass    uint32                `json:"string_class"`
	ClassClass     uint32                `json:"class_class"`
	ThrowableClass uint32                `json:"throwable_class"`
}

type ClassFixture struct {
	Handle     uint32   `json:"handle"`
	Name       string   `json:"name"`
	Super      uint32   `json:"super"`
	Interfaces []uint32 `json:"interfaces"`
	Interface  bool     `json:"interface"`
	ElemClass  uint32   `json:"elem_class"`
}

type FieldFixture struct {
	Idx            uint32 `json:"idx"`
	DeclaringClass uint32 `json:"declaring_class"`
	TypeShorty     string `json:"type_shorty"`
	TypeClass      uint32 `json:"type_class"`
	Static         bool   `json:"static"`
	Public         bool   `json:"public"`
	Private        bool   `json:"private"`
	Protected      bool   `json:"protected"`
}

type MethodRefFixture struct {
	Idx            uint32   `json:"idx"`
	DeclaringClass uint32   `json:"declaring_class"`
	ParamShorty    string   `json:"param_shorty"`
	ParamClasses   []uint32 `json:"param_classes"`
	ReturnShorty   string   `json:"return_shorty"`
	ReturnClass    uint32   `json:"return_class"`
	Static         bool     `json:"static"`
	Private        bool     `json:"private"`
	Protected      bool     `json:"protected"`
	Public         bool     `json:"public"`
	Constructor    bool     `json:"constructor"`
	Abstract       bool     `json:"abstract"`
	Final          bool     `json:"final"`
}

// LoadFixture reads and decodes a fixture file at path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dvmverify: reading fixture %s: %w", path, err)
	}
	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("dvmverify: parsing fixture %s: %w", path, err)
	}
	return &fx, nil
}

var accessFlagNames = map[string]verifyflow.AccessFlags{
	"static":      verifyflow.AccStatic,
	"abstract":    verifyflow.AccAbstract,
	"native":      verifyflow.AccNative,
	"constructor": verifyflow.AccConstructor,
}

// BuildMethod converts a MethodFixture into the verifyflow.Method the
// verifier consumes.
func (mf MethodFixture) BuildMethod() (*verifyflow.Method, error) {
	var access verifyflow.AccessFlags
	for _, name := range mf.Access {
		flag, ok := accessFlagNames[name]
		if !ok {
			return nil, fmt.Errorf("dvmverify: unknown access flag %q", name)
		}
		access |= flag
	}

	code := make([]opcode.CodeUnit, len(mf.Code))
	copy(code, mf.Code)

	tries := make([]verifyflow.TryItem, len(mf.Tries))
	for i, t := range mf.Tries {
		handlers := make([]verifyflow.Handler, len(t.Handlers))
		for j, h := range t.Handlers {
			handlers[j] = verifyflow.Handler{
				Addr:      h.Addr,
				CatchType: regtype.ClassHandle(h.CatchType),
				CatchAll:  h.CatchAll,
			}
		}
		tries[i] = verifyflow.TryItem{StartAddr: t.StartAddr, EndAddr: t.EndAddr, Handlers: handlers}
	}

	paramClasses := make([]regtype.ClassHandle, len(mf.ParamClasses))
	for i, c := range mf.ParamClasses {
		paramClasses[i] = regtype.ClassHandle(c)
	}

	return &verifyflow.Method{
		ID:             mf.ID,
		DeclaringClass: regtype.ClassHandle(mf.DeclaringClass),
		SuperClass:     regtype.ClassHandle(mf.SuperClass),
		RegistersSize:  mf.RegistersSize,
		InsSize:        mf.InsSize,
		OutsSize:       mf.OutsSize,
		Code:           code,
		Tries:          tries,
		Proto: verifyflow.Proto{
			ParamShorty:  []byte(mf.ParamShorty),
			ParamClasses: paramClasses,
			ReturnShorty: firstByteOrZero(mf.ReturnShorty),
			ReturnClass:  regtype.ClassHandle(mf.ReturnClass),
		},
		Access: access,
	}, nil
}

func firstByteOrZero(s string) byte {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// BuildResolver converts a ResolverFixture into a populated resolver.Fake.
func (rf ResolverFixture) BuildResolver() resolver.Resolver {
	fake := resolver.NewFake()
	for _, c := range rf.Classes {
		fake.Classes[regtype.ClassHandle(c.Handle)] = resolver.ClassDef{
			Name:      c.Name,
			Super:     regtype.ClassHandle(c.Super),
			Interface: c.Interface,
			ElemClass: regtype.ClassHandle(c.ElemClass),
			Interfaces: handlesOf(c.Interfaces),
		}
	}
	for _, f := range rf.Fields {
		fake.Fields[f.Idx] = resolver.FieldRef{
			DeclaringClass: regtype.ClassHandle(f.DeclaringClass),
			TypeShorty:     firstByteOrZero(f.TypeShorty),
			TypeClass:      regtype.ClassHandle(f.TypeClass),
			Static:         f.Static,
			Public:         f.Public,
			Private:        f.Private,
			Protected:      f.Protected,
		}
	}
	for _, m := range rf.Methods {
		fake.Methods[m.Idx] = resolver.MethodRef{
			DeclaringClass: regtype.ClassHandle(m.DeclaringClass),
			ParamShorty:    []byte(m.ParamShorty),
			ParamClasses:   handlesOf(m.ParamClasses),
			ReturnShorty:   firstByteOrZero(m.ReturnShorty),
			ReturnClass:    regtype.ClassHandle(m.ReturnClass),
			Static:         m.Static,
			Private:        m.Private,
			Protected:      m.Protected,
			Public:         m.Public,
			Constructor:    m.Constructor,
			Abstract:       m.Abstract,
			Final:          m.Final,
		}
	}
	for typeIdxStr, handle := range rf.ClassByTypeIdx {
		var typeIdx uint32
		fmt.Sscanf(typeIdxStr, "%d", &typeIdx)
		fake.ClassByTypeIdx[typeIdx] = regtype.ClassHandle(handle)
	}
	fake.StringClass = regtype.ClassHandle(rf.StringClass)
	fake.ClassClass = regtype.ClassHandle(rf.ClassClass)
	fake.ThrowableClass = regtype.ClassHandle(rf.ThrowableClass)
	return fake
}

func handlesOf(raw []uint32) []regtype.ClassHandle {
	out := make([]regtype.ClassHandle, len(raw))
	for i, v := range raw {
		out[i] = regtype.ClassHandle(v)
	}
	return out
}
