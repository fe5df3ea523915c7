package web

type TmpAuthCodeReq struct {
	// 上传的对象 key
	Key string `json:"key"`
	// 内容类型，比如 video/webm
	Type string `json:"type"`
}

type TmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
}
