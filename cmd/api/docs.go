package main

// @title           Nutrabene Backoffice API
// @version         1.0
// @description     API de back-office da Nutrabene: cadastros, estoque, vendas, financeiro e lembretes via WhatsApp

// @contact.name   Nutrabene
// @contact.email  contato@nutrabene.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
