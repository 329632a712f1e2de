package web

type AccountResp struct {
	Balance       int64  `json:"balance"`
	LockedBalance int64  `json:"lockedBalance"`
	Currency      string `json:"currency"`
}

type ListAccountLogsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListAccountLogsResp struct {
	Total int64        `json:"total,omitempty"`
	Logs  []AccountLog `json:"logs,omitempty"`
}

type AccountLog struct {
	BizSN        string `json:"bizSn"`
	ChangeAmount int64  `json:"changeAmount"`
	Balance      int64  `json:"balance"`
	Desc         string `json:"desc"`
	Status       int64  `json:"status"`
}
