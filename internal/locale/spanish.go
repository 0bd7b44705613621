package locale

import "github.com/abelbrown/sentinel/internal/catalog"

// builtinSpanish translates the built-in compound patterns. Every list
// must stay parallel with the canonical English text in the catalog;
// Validate enforces this at startup.
var builtinSpanish = map[string]Translation{
	"trade-war-escalation": {
		Name: "Escalada de Guerra Comercial",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"La actividad simultánea de aranceles y sanciones señala una escalada deliberada, no fricción comercial rutinaria.",
				"La disrupción logística junto con la tensión bilateral amplifica el daño económico más allá de los sectores afectados.",
				"Los ciclos de escalada de esta forma duran históricamente trimestres, no semanas.",
			},
			Indicators: []string{
				"Nuevos calendarios arancelarios anunciados por cualquiera de las partes dentro de la ventana.",
				"Ampliaciones de controles de exportación o listas de entidades dirigidas a sectores estratégicos.",
				"Avisos de transportistas o desvíos de ruta en las líneas transpacíficas.",
			},
			ConfirmationSignals: []string{
				"Medidas de represalia anunciadas dentro de las dos semanas siguientes a la acción inicial.",
				"Persistencia de todos los temas contribuyentes a lo largo de ciclos de monitoreo consecutivos.",
				"Revisiones de previsiones corporativas que citan la política comercial como riesgo principal.",
			},
			Assumptions: []string{
				"Ninguna de las partes busca actualmente una salida negociada.",
				"Las acciones arancelarias reportadas en fuentes abiertas reflejan la aplicación aduanera real.",
			},
			ChangeTriggers: []string{
				"Cumbre anunciada a nivel de líderes con el comercio en la agenda.",
				"Suspensión o reversión de un tramo arancelario previamente anunciado.",
			},
		},
	},
	"energy-shock": {
		Name: "Choque de Suministro Energético",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"Movimientos de precios que coinciden con riesgo en puntos de estrangulamiento indican un problema físico de suministro, no financiero.",
				"Las sanciones a productores agravan la disrupción más rápido de lo que la capacidad ociosa puede absorber.",
				"La postura militar cerca de rutas de tránsito eleva los costos de seguros antes de cualquier interdicción real.",
			},
			Indicators: []string{
				"Referencias del crudo moviéndose más del cinco por ciento dentro de la ventana.",
				"Cambios en la prima de riesgo de guerra para petroleros que transitan los estrechos afectados.",
				"Paquetes de sanciones a estados productores en discusión activa.",
			},
			ConfirmationSignals: []string{
				"Desvíos de ruta anunciados por las principales navieras.",
				"Liberaciones de reservas estratégicas anunciadas por naciones consumidoras.",
				"Co-ocurrencia sostenida durante tres o más ciclos.",
			},
			Assumptions: []string{
				"La capacidad de producción ociosa permanece cerca de mínimos históricos.",
				"Los datos de tránsito en la prensa marítima son en general precisos.",
			},
			ChangeTriggers: []string{
				"Acuerdos de escolta naval que restauran los volúmenes normales de tránsito.",
				"Acuerdo de productores para compensar el suministro sancionado.",
			},
		},
	},
	"tech-decoupling": {
		Name: "Desacoplamiento Tecnológico",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"Los controles de exportación de chips junto con la tensión bilateral marcan una ruptura estructural, no una ficha de negociación.",
				"Los anuncios de inversión en fundiciones siguen a los regímenes de control con un retraso de uno a dos años.",
			},
			Indicators: []string{
				"Nuevas restricciones de litografía o herramientas EDA.",
				"Llamadas de resultados de fabricantes de chips que citan incertidumbre de licencias.",
			},
			ConfirmationSignals: []string{
				"Gobiernos aliados replicando los controles.",
				"Construcción de fábricas anunciada explícitamente como seguridad de suministro.",
			},
			Assumptions: []string{
				"La fabricación de vanguardia sigue concentrada geográficamente.",
				"Los regímenes de control se aplican en lugar de ser simbólicos.",
			},
			ChangeTriggers: []string{
				"Reanudación de aprobaciones de licencias para exportaciones antes bloqueadas.",
				"Un marco bilateral de comercio tecnológico entrando en negociación.",
			},
		},
	},
	"financial-contagion": {
		Name: "Riesgo de Contagio Financiero",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"El estrés cambiario durante un ciclo de endurecimiento se propaga por los canales de deuda denominada en dólares.",
				"La persistencia de la inflación limita el margen de los bancos centrales para respaldar monedas bajo presión.",
			},
			Indicators: []string{
				"Movimientos de monedas emergentes más allá de dos desviaciones estándar.",
				"Reuniones no programadas de bancos centrales o anuncios de intervención.",
			},
			ConfirmationSignals: []string{
				"Conversaciones sobre programas del FMI entrando en el flujo de noticias.",
				"Controles de capital impuestos o ampliados en una economía bajo presión.",
			},
			Assumptions: []string{
				"Los principales bancos centrales priorizan sus mandatos domésticos sobre los efectos de derrame.",
				"Las cifras de reservas reportadas no están materialmente sobreestimadas.",
			},
			ChangeTriggers: []string{
				"Extensiones coordinadas de líneas swap por los principales bancos centrales.",
				"Una tendencia clara de desinflación que restaura la flexibilidad de política.",
			},
		},
	},
	"gray-zone-pressure": {
		Name: "Campaña de Presión en Zona Gris",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"La actividad cibernética, militar y diplomática coordinada bajo el umbral de conflicto indica una campaña de presión deliberada.",
				"Las campañas de este tipo buscan desplazar las líneas base gradualmente; las lecturas de un solo ciclo las subestiman.",
			},
			Indicators: []string{
				"Intrusiones atribuidas contra operadores de infraestructura crítica.",
				"Ejercicios que ensayan escenarios de bloqueo o interdicción.",
				"Expulsiones diplomáticas o embajadores llamados a consultas.",
			},
			ConfirmationSignals: []string{
				"Tres o más temas contribuyentes activos en ciclos consecutivos.",
				"Gobiernos terceros emitiendo declaraciones de atribución coordinadas.",
			},
			Assumptions: []string{
				"La actividad cibernética observada es dirigida por estados y no criminal.",
				"Ninguna de las partes pretende actualmente una escalada cinética.",
			},
			ChangeTriggers: []string{
				"Establecimiento de una línea directa militar o canal de desconflicto.",
				"Un incidente cinético agudo que saca la situación de la zona gris.",
			},
		},
	},
	"humanitarian-spillover": {
		Name: "Desbordamiento Humanitario",
		Narrative: catalog.Narrative{
			KeyJudgments: []string{
				"Los choques de precios de alimentos preceden los disturbios en estados dependientes de importaciones por uno a tres meses.",
				"Las oleadas migratorias concentran el estrés político en estados de tránsito y destino simultáneamente.",
			},
			Indicators: []string{
				"Disturbios por precios de alimentos básicos o subsidios al pan bajo presión.",
				"Conteos de cruces fronterizos en aumento durante períodos consecutivos.",
			},
			ConfirmationSignals: []string{
				"Llamamientos de emergencia de las agencias alimentarias de la ONU.",
				"Toques de queda o estados de emergencia en las regiones afectadas.",
			},
			Assumptions: []string{
				"Las disrupciones de exportación de granos persisten durante la temporada actual.",
				"Los estados vecinos carecen de capacidad de absorción para flujos sostenidos.",
			},
			ChangeTriggers: []string{
				"Una cosecha materialmente superior al pronóstico en las regiones afectadas.",
				"Un corredor de exportación negociado que restaura los flujos básicos.",
			},
		},
	},
}
