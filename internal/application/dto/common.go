package dto

// Envelope respuesta uniforme de la API: {success, message, data}.
// Code y Errors solo se incluyen en respuestas de error.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK construye un envelope exitoso.
func OK(data interface{}, message string) Envelope {
	if message == "" {
		message = "Operación exitosa"
	}
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail construye un envelope de error con código legible por máquina.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, Message: message, Code: code}
}
