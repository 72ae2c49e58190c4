package parser

import (
	"github.com/skx/mariec/token"
)

// parseArgumentNext consumes one argument from the front of tokens, if
// any is there to consume. It does not error on "nothing left to parse":
// the caller uses that to know the argument list ended (typically because
// the next token is the call's closing `)`, per spec §4.3).
func parseArgumentNext(tokens []token.Token, ctx *buildingContext, line uint, original string) (ArgumentCallArg, int, bool, error) {
	if len(tokens) == 0 {
		return ArgumentCallArg{}, 0, false, nil
	}

	switch tokens[0].Kind {
	case token.LABEL:
		id, err := ctx.mustResolveVariable(tokens[0].Label, line, original)
		if err != nil {
			return ArgumentCallArg{}, 0, false, err
		}
		return ArgumentCallArg{Kind: ArgReference, VarID: id}, 1, true, nil

	case token.NUMBER:
		return ArgumentCallArg{Kind: ArgLiteral, Literal: tokens[0].Number}, 1, true, nil

	case token.SYMBOL:
		if len(tokens) < 2 || tokens[1].Kind != token.LABEL {
			return ArgumentCallArg{}, 0, false, nil
		}
		name := tokens[1].Label

		switch tokens[0].Symbol {
		case token.ASTERISK:
			id, err := ctx.mustResolveVariable(name, line, original)
			if err != nil {
				return ArgumentCallArg{}, 0, false, err
			}
			return ArgumentCallArg{Kind: ArgDeref, VarID: id}, 2, true, nil

		case token.AMPERSAND:
			id, err := ctx.mustResolveVariable(name, line, original)
			if err != nil {
				return ArgumentCallArg{}, 0, false, err
			}
			return ArgumentCallArg{Kind: ArgGetAddress, VarID: id}, 2, true, nil

		case token.MINUS:
			return ArgumentCallArg{Kind: ArgFlag, FlagLabel: name, FlagFunc: ctx.fn.ID}, 2, true, nil

		default:
			return ArgumentCallArg{}, 0, false, nil
		}

	default:
		return ArgumentCallArg{}, 0, false, nil
	}
}

// parseCallArguments greedily consumes arguments from the front of
// tokens, recording every literal encountered into the building
// context's (and the tree's) constant set, per spec §4.3 "Constant
// harvesting".
func parseCallArguments(tokens []token.Token, ctx *buildingContext, line uint, original string) ([]ArgumentCallArg, error) {
	var args []ArgumentCallArg

	for {
		arg, consumed, ok, err := parseArgumentNext(tokens, ctx, line, original)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if arg.Kind == ArgLiteral {
			ctx.recordLiteral(arg.Literal)
		}
		args = append(args, arg)
		tokens = tokens[consumed:]
	}

	return args, nil
}
