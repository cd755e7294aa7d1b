package classifier

import "github.com/ragdex/ragdex/internal/domain"

// Spanish rule table, merged with the English one at construction so a
// single Classify call covers both languages.
var spanishRules = ruleTable{
	domain.CategoryMath: {
		{Name: "es_cuanto_es", Pattern: `(?i)\bcu[aá]nto\s+(es|son|vale|da)\b`, Weight: 1.5},
		{Name: "es_calcular", Pattern: `(?i)\bcalcul(a|ar|e|o)\b`, Weight: 1.0},
		{Name: "es_resolver", Pattern: `(?i)\bresuelv(e|a|er|o)\b`, Weight: 1.0},
		{Name: "es_ecuacion", Pattern: `(?i)\becuaci[oó]n(es)?\b`, Weight: 1.0},
		{Name: "es_matematicas", Pattern: `(?i)\bmatem[aá]tica(s)?\b`, Weight: 1.0},
		{Name: "es_formula", Pattern: `(?i)\bf[oó]rmula(s)?\b`, Weight: 1.0},
		{Name: "es_algebra", Pattern: `(?i)\b[aá]lgebra\b`, Weight: 1.0},
		{Name: "es_porcentaje", Pattern: `(?i)\bporcentaje(s)?\b`, Weight: 1.0},
		{Name: "es_fraccion", Pattern: `(?i)\bfracci[oó]n(es)?\b`, Weight: 1.0},
		{Name: "es_raiz_cuadrada", Pattern: `(?i)\bra[ií]z\s+cuadrada\b`, Weight: 1.0},
		{Name: "es_suma", Pattern: `(?i)\bsuma(r|ndo)?\b`, Weight: 1.0},
		{Name: "es_resta", Pattern: `(?i)\bresta(r|ndo)?\b`, Weight: 1.0},
		{Name: "es_multiplicar", Pattern: `(?i)\bmultiplica(r|ci[oó]n)?\b`, Weight: 1.0},
		{Name: "es_dividir", Pattern: `(?i)\bdivid(e|ir|iendo)\b`, Weight: 1.0},
		{Name: "es_promedio", Pattern: `(?i)\bpromedio\b`, Weight: 1.0},
		{Name: "es_si_tengo_n", Pattern: `(?i)\bsi\s+tengo\s+\d+`, Weight: 1.0},
		{Name: "es_cuantos_quedan", Pattern: `(?i)\bcu[aá]ntos?\s+quedan\b`, Weight: 1.0},
		{Name: "es_en_total", Pattern: `(?i)\ben\s+total\b`, Weight: 1.0},
		{Name: "es_resultado", Pattern: `(?i)\bcu[aá]l\s+es\s+el\s+resultado\b`, Weight: 1.0},
		{Name: "es_porciento_de", Pattern: `(?i)\bel\s+\d+\s*%\s+de\b`, Weight: 1.0},
	},
	domain.CategoryCode: {
		{Name: "es_codigo", Pattern: `(?i)\bc[oó]digo\b`, Weight: 1.0},
		{Name: "es_programar", Pattern: `(?i)\bprograma(ci[oó]n|r)?\b`, Weight: 1.0},
		{Name: "es_funcion", Pattern: `(?i)\bfunci[oó]n(es)?\b`, Weight: 1.0},
		{Name: "es_metodo", Pattern: `(?i)\bm[eé]todo(s)?\b`, Weight: 1.0},
		{Name: "es_bucle", Pattern: `(?i)\bbucle(s)?\b`, Weight: 1.0},
		{Name: "es_arreglo", Pattern: `(?i)\barreglo(s)?\b`, Weight: 1.0},
		{Name: "es_cadena", Pattern: `(?i)\bcadena(s)?\s+de\s+texto\b`, Weight: 1.0},
		{Name: "es_depurar", Pattern: `(?i)\bdepurar\b`, Weight: 1.0},
		{Name: "es_compilar", Pattern: `(?i)\bcompilar\b`, Weight: 1.0},
		{Name: "es_implementar", Pattern: `(?i)\bimplementar\b`, Weight: 1.0},
		{Name: "es_refactorizar", Pattern: `(?i)\brefactorizar\b`, Weight: 1.0},
		{Name: "es_corregir_error", Pattern: `(?i)\bcorregir\s+(el\s+)?(error|bug|fallo)\b`, Weight: 1.2},
		{Name: "es_escribir_codigo", Pattern: `(?i)\bescrib(e|ir)\s+(un(a)?\s+)?(c[oó]digo|funci[oó]n|programa)\b`, Weight: 1.2},
		{Name: "es_como_programo", Pattern: `(?i)\bc[oó]mo\s+(hago|hacer|programo|codifico)\b`, Weight: 1.0},
		{Name: "es_sintaxis", Pattern: `(?i)\bsintaxis\b`, Weight: 1.0},
		{Name: "es_algoritmo", Pattern: `(?i)\balgor[ií]tmo(s)?\b`, Weight: 1.0},
		{Name: "es_estructura_datos", Pattern: `(?i)\bestructura\s+de\s+datos\b`, Weight: 1.2},
		{Name: "es_base_datos", Pattern: `(?i)\bbase\s+de\s+datos\b`, Weight: 1.0},
		{Name: "es_consulta_sql", Pattern: `(?i)\bconsulta\s+(sql|de\s+base)\b`, Weight: 1.2},
		{Name: "es_expresion_regular", Pattern: `(?i)\bexpresi[oó]n\s+regular\b`, Weight: 1.2},
	},
	domain.CategoryReasoning: {
		{Name: "es_analizar", Pattern: `(?i)\banaliz(a|ar|o)\b`, Weight: 1.0},
		{Name: "es_comparar", Pattern: `(?i)\bcompar(a|ar|o)\b`, Weight: 1.0},
		{Name: "es_evaluar", Pattern: `(?i)\beval[uú](a|ar|o)\b`, Weight: 1.0},
		{Name: "es_ventajas_desventajas", Pattern: `(?i)\bventajas?\s+y\s+desventajas?\b`, Weight: 2.0},
		{Name: "es_pros_contras", Pattern: `(?i)\bpros?\s+y\s+contras?\b`, Weight: 2.0},
		{Name: "es_ventajas", Pattern: `(?i)\bventajas?\b`, Weight: 1.0},
		{Name: "es_desventajas", Pattern: `(?i)\bdesventajas?\b`, Weight: 1.0},
		{Name: "es_por_que_lead", Pattern: `(?i)^por\s+qu[eé]\b`, Weight: 2.0},
		{Name: "es_por_que_es", Pattern: `(?i)\bpor\s+qu[eé]\s+(es|son|est[aá]|funciona)\b`, Weight: 1.5},
		{Name: "es_explica_por_que", Pattern: `(?i)\bexplica(r)?\s+por\s+qu[eé]\b`, Weight: 1.5},
		{Name: "es_razonamiento", Pattern: `(?i)\braz[oó]n(es|amiento)?\b`, Weight: 1.0},
		{Name: "es_hipotesis", Pattern: `(?i)\bhip[oó]tesis\b`, Weight: 1.0},
		{Name: "es_que_pasaria_si", Pattern: `(?i)\bqu[eé]\s+pasar[ií]a\s+si\b`, Weight: 2.0},
		{Name: "es_imagina_que", Pattern: `(?i)\bimagina(r)?\s+que\b`, Weight: 1.5},
		{Name: "es_supongamos", Pattern: `(?i)\bsupon(er|gamos|iendo)\b`, Weight: 1.5},
		{Name: "es_hipoteticamente", Pattern: `(?i)\bhipot[eé]ticamente\b`, Weight: 1.5},
		{Name: "es_deberia_lead", Pattern: `(?i)^deber[ií]a\s+(yo|usar|aprender|elegir)\b`, Weight: 2.0},
		{Name: "es_que_opinas", Pattern: `(?i)\bqu[eé]\s+opinas?\b`, Weight: 1.0},
	},
	domain.CategoryTools: {
		{Name: "es_buscar_web", Pattern: `(?i)\bbusca(r)?\s+(en\s+)?(la\s+)?web\b`, Weight: 1.5},
		{Name: "es_buscar_internet", Pattern: `(?i)\bbusca(r)?\s+(en\s+)?internet\b`, Weight: 1.5},
		{Name: "es_buscar_informacion", Pattern: `(?i)\bbusca(r)?\s+informaci[oó]n\b`, Weight: 1.0},
		{Name: "es_googlear", Pattern: `(?i)\bgooglea(r)?\b`, Weight: 1.0},
		{Name: "es_descargar", Pattern: `(?i)\bdescargar\b`, Weight: 1.0},
		{Name: "es_guardar", Pattern: `(?i)\bguardar\s+(en|como)\b`, Weight: 1.0},
		{Name: "es_generar_imagen", Pattern: `(?i)\bgenera(r)?\s+(una?\s+)?(imagen|foto|dibujo|ilustraci[oó]n)\b`, Weight: 1.5},
		{Name: "es_crear_imagen", Pattern: `(?i)\bcrea(r)?\s+(una?\s+)?(imagen|foto|dibujo|ilustraci[oó]n)\b`, Weight: 1.5},
		{Name: "es_dibujar", Pattern: `(?i)\bdibuja(r)?\s+(un(a)?|me)\b`, Weight: 1.5},
		{Name: "es_enviar_correo", Pattern: `(?i)\benvia(r)?\s+(un(a)?\s+)?(correo|email|mensaje)\b`, Weight: 1.0},
		{Name: "es_recordatorio", Pattern: `(?i)\brecordatorio\b`, Weight: 1.0},
		{Name: "es_clima", Pattern: `(?i)\bclima\b`, Weight: 1.0},
		{Name: "es_noticias", Pattern: `(?i)\bnoticias\b`, Weight: 1.0},
		{Name: "es_cotizacion", Pattern: `(?i)\bcotizaci[oó]n\b`, Weight: 1.0},
		{Name: "es_traducir", Pattern: `(?i)\btraduc(e|ir)\b`, Weight: 1.0},
		{Name: "es_ultimas_noticias", Pattern: `(?i)\b[uú]ltimas?\s+noticias?\b`, Weight: 1.2},
	},
	domain.CategoryGreeting: {
		{Name: "es_hola", Pattern: `(?i)^hola\b`, Weight: 2.0},
		{Name: "es_buenos_dias", Pattern: `(?i)^buenos?\s+d[ií]as?\b`, Weight: 2.0},
		{Name: "es_buenas_tardes", Pattern: `(?i)^buenas?\s+tardes?\b`, Weight: 2.0},
		{Name: "es_buenas_noches", Pattern: `(?i)^buenas?\s+noches?\b`, Weight: 2.0},
		{Name: "es_que_tal", Pattern: `(?i)^qu[eé]\s+tal\b`, Weight: 2.0},
		{Name: "es_saludos", Pattern: `(?i)^saludos?\b`, Weight: 2.0},
		{Name: "es_como_estas", Pattern: `(?i)^c[oó]mo\s+est[aá]s?\b`, Weight: 2.0},
		{Name: "es_mucho_gusto", Pattern: `(?i)\bmucho\s+gusto\b`, Weight: 1.5},
		{Name: "es_adios", Pattern: `(?i)\badi[oó]s\b`, Weight: 1.0},
		{Name: "es_hasta_luego", Pattern: `(?i)\bhasta\s+(luego|pronto|ma[nñ]ana|la\s+vista)\b`, Weight: 1.0},
		{Name: "es_nos_vemos", Pattern: `(?i)\bnos\s+vemos\b`, Weight: 1.0},
		{Name: "es_gracias", Pattern: `(?i)^(muchas\s+)?gracias\b`, Weight: 1.0},
		{Name: "es_quien_eres", Pattern: `(?i)\bqui[eé]n\s+eres\b`, Weight: 1.5},
		{Name: "es_como_te_llamas", Pattern: `(?i)\bc[oó]mo\s+te\s+llamas\b`, Weight: 1.5},
		{Name: "es_que_puedes_hacer", Pattern: `(?i)\bqu[eé]\s+(puedes|sabes)\s+hacer\b`, Weight: 1.5},
	},
	domain.CategoryFactual: {
		{Name: "es_que_es_lead", Pattern: `(?i)^qu[eé]\s+(es|son|fue|eran?)\b`, Weight: 1.5},
		{Name: "es_quien_es_lead", Pattern: `(?i)^qui[eé]n(es)?\s+(es|son|fue|fueron|era|eran)\b`, Weight: 1.5},
		{Name: "es_cuando_lead", Pattern: `(?i)^cu[aá]ndo\s+(es|fue|era|ser[aá])\b`, Weight: 1.5},
		{Name: "es_donde_lead", Pattern: `(?i)^d[oó]nde\s+(es|est[aá]|queda|se\s+encuentra)\b`, Weight: 1.5},
		{Name: "es_cual_es_lead", Pattern: `(?i)^cu[aá]l\s+(es|fue|era)\b`, Weight: 1.5},
		{Name: "es_cuantos_hay_lead", Pattern: `(?i)^cu[aá]ntos?\s+(hay|tiene|son|eran)\b`, Weight: 1.2},
		{Name: "es_definir", Pattern: `(?i)\bdefin(e|ir|ici[oó]n)\b`, Weight: 1.0},
		{Name: "es_significado_de", Pattern: `(?i)\bsignificado\s+de\b`, Weight: 1.0},
		{Name: "es_que_significa", Pattern: `(?i)\bqu[eé]\s+significa\b`, Weight: 1.0},
		{Name: "es_historia_de", Pattern: `(?i)\bhistoria\s+de\b`, Weight: 1.0},
		{Name: "es_origen_de", Pattern: `(?i)\borigen\s+de\b`, Weight: 1.0},
		{Name: "es_cuentame_sobre", Pattern: `(?i)\bcu[eé]ntame\s+(sobre|de|acerca)\b`, Weight: 1.0},
		{Name: "es_describir", Pattern: `(?i)\bdescrib(e|ir)\b`, Weight: 1.0},
		{Name: "es_capital_de", Pattern: `(?i)\bcapital\s+de\b`, Weight: 1.2},
		{Name: "es_poblacion_de", Pattern: `(?i)\bpoblaci[oó]n\s+de\b`, Weight: 1.2},
		{Name: "es_presidente_de", Pattern: `(?i)\bpresidente\s+de\b`, Weight: 1.2},
		{Name: "es_inventor_de", Pattern: `(?i)\binventor\s+de\b`, Weight: 1.5},
		{Name: "es_quien_invento", Pattern: `(?i)\bquien\s+invent[oó]\b`, Weight: 2.0},
		{Name: "es_quien_descubrio", Pattern: `(?i)\bquien\s+descubri[oó]\b`, Weight: 2.0},
		{Name: "es_creador_de", Pattern: `(?i)\bcreador\s+de\b`, Weight: 1.5},
		{Name: "es_autor_de", Pattern: `(?i)\bautor\s+de\b`, Weight: 1.0},
	},
}
