package model

type UploadRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

type UploadResponse struct {
	Url string `json:"url"`
}
