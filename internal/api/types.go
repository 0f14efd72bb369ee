// Package api はHTTPレスポンスの共通型を定義します。
package api

// ErrorResponse は単一のエラーメッセージを返すレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果のメッセージを返すレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError はリクエストボディの項目単位のバリデーションエラーです。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse は項目単位のエラー一覧を返すレスポンスです。
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
