package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "R$ " + d.StringFixed(2)
	},
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

const baseStyle = `
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 24px; }
  h1 { font-size: 20px; border-bottom: 2px solid #7c3aed; padding-bottom: 8px; }
  .kpis { display: flex; gap: 16px; margin: 16px 0; }
  .kpi { background: #f5f3ff; border-radius: 8px; padding: 12px 16px; flex: 1; }
  .kpi .label { font-size: 11px; color: #6b7280; text-transform: uppercase; }
  .kpi .value { font-size: 18px; font-weight: bold; margin-top: 4px; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th { text-align: left; font-size: 11px; color: #6b7280; text-transform: uppercase;
       border-bottom: 1px solid #d1d5db; padding: 6px 8px; }
  td { font-size: 13px; padding: 6px 8px; border-bottom: 1px solid #f3f4f6; }
  td.num, th.num { text-align: right; }
</style>`

var monthlySummaryTemplate = template.Must(template.New("monthly").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>Relatório Mensal Nutrabene</title>` + baseStyle + `</head>
<body>
  <h1>Nutrabene — Relatório de {{.MonthName}} de {{.Summary.Year}}</h1>
  <div class="kpis">
    <div class="kpi"><div class="label">Faturamento Bruto</div><div class="value">{{money .Summary.Gross}}</div></div>
    <div class="kpi"><div class="label">Descontos e Comissões</div><div class="value">{{money .Summary.Discounts}}</div></div>
    <div class="kpi"><div class="label">Receita Líquida</div><div class="value">{{money .Summary.Net}}</div></div>
    <div class="kpi"><div class="label">Vendas</div><div class="value">{{.Summary.SalesCount}}</div></div>
  </div>
  <h1>Ranking de Produtos</h1>
  <table>
    <tr><th>Produto</th><th class="num">Quantidade</th><th class="num">Receita Líquida</th></tr>
    {{range .Summary.Ranking}}
    <tr><td>{{.ProductName}}</td><td class="num">{{.Quantity}}</td><td class="num">{{money .NetAmount}}</td></tr>
    {{else}}
    <tr><td colspan="3">Nenhuma venda no período.</td></tr>
    {{end}}
  </table>
</body></html>`))

var commissionsTemplate = template.Must(template.New("commissions").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>Comissões Pendentes Nutrabene</title>` + baseStyle + `</head>
<body>
  <h1>Nutrabene — Comissões Pendentes por Revendedor</h1>
  <table>
    <tr><th>Revendedor</th><th class="num">Vendas em Aberto</th><th class="num">Total Líquido</th><th class="num">Comissão</th></tr>
    {{range .}}
    <tr>
      <td>{{.Reseller.Name}}</td>
      <td class="num">{{.SalesCount}}</td>
      <td class="num">{{money .NetTotal}}</td>
      <td class="num">{{money .Commission}}</td>
    </tr>
    {{else}}
    <tr><td colspan="4">Nenhuma comissão pendente.</td></tr>
    {{end}}
  </table>
</body></html>`))

func renderMonthlySummaryHTML(summary *MonthlySummary) (string, error) {
	data := struct {
		Summary   *MonthlySummary
		MonthName string
	}{
		Summary:   summary,
		MonthName: monthNames[int(summary.Month)-1],
	}

	var buf bytes.Buffer
	if err := monthlySummaryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("erro ao executar template: %w", err)
	}
	return buf.String(), nil
}

func renderCommissionsHTML(commissions []ResellerCommission) (string, error) {
	var buf bytes.Buffer
	if err := commissionsTemplate.Execute(&buf, commissions); err != nil {
		return "", fmt.Errorf("erro ao executar template: %w", err)
	}
	return buf.String(), nil
}
