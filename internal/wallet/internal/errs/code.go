package errs

var (
	SystemError      = ErrorCode{Code: 505001, Msg: "系统错误"}
	BalanceNotEnough = ErrorCode{Code: 505002, Msg: "余额不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
