package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in milliseconds for response envelopes
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewOKResponse creates a successful response wrapping the given data
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewListResponse creates a successful response whose data is a list
func NewListResponse(list interface{}) ResponseModel {
	data := struct {
		List interface{} `json:"list"`
	}{
		List: list,
	}
	return NewOKResponse(data)
}

// NewEntryResponse creates a successful response whose data is a single entry
func NewEntryResponse(entry interface{}) ResponseModel {
	data := struct {
		Entry interface{} `json:"entry"`
	}{
		Entry: entry,
	}
	return NewOKResponse(data)
}
