// Package swagger Events Directory API.
//
// REST-бэкенд мультиязычной афиши культурных событий. Справочники
// городов и типов, площадки и события с автопереводом названий и
// описаний (en, ru, he), геокодированием адресов и diff-обновлениями,
// аккаунты с подтверждением почты и избранным.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_auth:
//
//	SecurityDefinitions:
//	bearer_auth:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package swagger
