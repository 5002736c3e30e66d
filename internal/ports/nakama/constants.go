package nakama

// RPC ids registered with Nakama.
const (
	RpcClassify     = "thirteen_classify"
	RpcValidatePlay = "thirteen_validate_play"
	RpcGenerate     = "thirteen_generate"
	RpcBotMove      = "thirteen_bot_move"
	RpcPersonas     = "thirteen_personas"
)

// gRPC status codes used by runtime.NewError.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
)
