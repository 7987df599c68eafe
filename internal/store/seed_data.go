// Copyright (c) 2026 Dockly contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/dockly/dockly-go/internal/model"

// Default content mirrors the hardcoded public pages the CMS replaced. Text
// is Spanish; it is the primary audience language.

var seedWorkAreas = []CreateWorkAreaParams{
	{
		Name:         "Hotel / Housekeeping",
		Description:  "Se encarga de mantener la limpieza y el orden de cabinas, areas publicas y espacios comunes. Es una de las puertas de entrada mas accesibles para quienes inician en la industria.",
		Functions:    model.StringList{"Limpieza y preparacion diaria de cabinas", "Reposicion de amenidades y ropa de cama", "Limpieza de areas publicas", "Servicio de lavanderia", "Atencion a solicitudes de huespedes"},
		Requirements: model.StringList{"Atencion al detalle", "Resistencia fisica", "Trabajo en equipo", "Organizacion", "Actitud de servicio"},
		EntryLevel:   model.EntryLevelEntry,
		Position:     1,
	},
	{
		Name:         "Alimentos y Bebidas (F&B)",
		Description:  "Gestiona restaurantes, bares, buffets y servicios de comida a bordo. Es uno de los departamentos mas grandes y con mayor interaccion directa con pasajeros.",
		Functions:    model.StringList{"Servicio de alimentos en restaurantes y buffets", "Preparacion y servicio de bebidas", "Montaje y desmontaje de mesas", "Atencion personalizada a pasajeros", "Manejo de inventario de bebidas"},
		Requirements: model.StringList{"Comunicacion interpersonal", "Manejo de estres", "Memoria y atencion", "Conocimiento de vinos y cocteles", "Trabajo bajo presion"},
		EntryLevel:   model.EntryLevelEntry,
		Position:     2,
	},
	{
		Name:         "Cocina / Galley",
		Description:  "Produce miles de comidas diarias para pasajeros y tripulacion. Requiere personal con formacion culinaria y capacidad de trabajar en espacios reducidos bajo alta presion.",
		Functions:    model.StringList{"Preparacion de alimentos segun estandares", "Manejo de cocina en linea", "Control de calidad e higiene alimentaria", "Gestion de inventario", "Cumplimiento de normativas sanitarias maritimas"},
		Requirements: model.StringList{"Formacion culinaria", "Resistencia al calor y presion", "Conocimiento de HACCP", "Trabajo en equipo", "Velocidad y precision"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     3,
	},
	{
		Name:         "Entretenimiento",
		Description:  "Se encarga de la programacion de actividades, shows, eventos y animacion. Incluye artistas de escenario, coordinadores de actividades y personal de programas infantiles.",
		Functions:    model.StringList{"Planificacion y ejecucion de shows", "Animacion de actividades diurnas y nocturnas", "Coordinacion de artistas y tecnicos", "Conduccion de juegos y fiestas tematicas", "Supervision de programas infantiles"},
		Requirements: model.StringList{"Carisma y presencia escenica", "Comunicacion publica", "Creatividad", "Flexibilidad horaria", "Talento artistico especifico"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     4,
	},
	{
		Name:         "Casino",
		Description:  "Opera las instalaciones de juego a bordo: mesas, maquinas tragamonedas y eventos de poker. Regulaciones estrictas y requisitos especificos de licencia.",
		Functions:    model.StringList{"Operacion de mesas de juego", "Mantenimiento de maquinas", "Manejo de transacciones y fichas", "Atencion al cliente en casino", "Cumplimiento de regulaciones de juego maritimo"},
		Requirements: model.StringList{"Habilidad matematica rapida", "Destreza manual", "Integridad y etica", "Atencion al detalle", "Manejo de presion"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     5,
	},
	{
		Name:         "Spa & Wellness",
		Description:  "Ofrece servicios de belleza, masajes, tratamientos corporales y fitness. Generalmente operado por concesionarios externos como Steiner Leisure.",
		Functions:    model.StringList{"Tratamientos de masaje y corporales", "Servicios de peluqueria y estetica", "Clases de fitness", "Venta de productos de belleza", "Gestion de citas"},
		Requirements: model.StringList{"Certificaciones profesionales vigentes", "Habilidades de venta", "Trato personalizado", "Conocimiento de productos", "Presentacion personal impecable"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     6,
	},
	{
		Name:         "Tiendas / Retail",
		Description:  "Gestiona tiendas duty-free a bordo: joyeria, perfumeria, ropa de marca, souvenirs y articulos de lujo. Ventas en aguas internacionales.",
		Functions:    model.StringList{"Atencion y asesoria al cliente", "Manejo de inventario y exhibiciones", "Procesamiento de ventas", "Eventos de venta especiales", "Mantenimiento visual de tiendas"},
		Requirements: model.StringList{"Habilidades de venta", "Conocimiento de productos", "Presentacion personal", "Manejo de caja y POS", "Orientacion a metas"},
		EntryLevel:   model.EntryLevelEntry,
		Position:     7,
	},
	{
		Name:         "Recepcion / Guest Services",
		Description:  "Punto central de atencion al pasajero. Maneja consultas, quejas, informacion de itinerario, cambio de divisas y servicios especiales. La cara visible del servicio al cliente.",
		Functions:    model.StringList{"Atencion de consultas y resolucion de problemas", "Manejo de quejas", "Informacion sobre itinerarios y excursiones", "Cambio de divisas", "Coordinacion de servicios especiales"},
		Requirements: model.StringList{"Comunicacion excepcional", "Resolucion de conflictos", "Paciencia y empatia", "Manejo de sistemas informaticos", "Multiples idiomas (ventaja)"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     8,
	},
	{
		Name:         "Cubierta (Deck)",
		Description:  "Responsable de navegacion, maniobras, seguridad maritima y mantenimiento exterior del buque. Departamento tecnico que requiere formacion maritima formal.",
		Functions:    model.StringList{"Navegacion y vigilancia en el puente", "Maniobras de atraque y desatraque", "Mantenimiento de equipos de salvamento", "Operaciones de seguridad y simulacros", "Mantenimiento exterior del buque"},
		Requirements: model.StringList{"Formacion nautica certificada", "Conocimiento de regulaciones SOLAS/MARPOL", "Liderazgo y toma de decisiones", "Resistencia fisica", "Trabajo en condiciones adversas"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     9,
	},
	{
		Name:         "Motor (Engine)",
		Description:  "Mantiene y opera todos los sistemas mecanicos, electricos y de ingenieria del buque: motores, generadores, sistemas de agua, aire acondicionado y mas.",
		Functions:    model.StringList{"Operacion y mantenimiento de motores principales", "Gestion de sistemas electricos", "Mantenimiento de sistemas de climatizacion", "Control de sistemas de agua y combustible", "Reparaciones mecanicas y electricas"},
		Requirements: model.StringList{"Formacion tecnica certificada", "Conocimiento de sistemas mecanicos/electricos", "Resolucion de problemas tecnicos", "Trabajo en espacios confinados", "Resistencia al calor y ruido"},
		EntryLevel:   model.EntryLevelExperienced,
		Position:     10,
	},
}

var seedBoardingSteps = []CreateBoardingStepParams{
	{
		Title:            "Oferta o preseleccion",
		Description:      "Aplicas a vacantes a traves de portales oficiales de navieras, agencias autorizadas o ferias de empleo maritimo. Preparas tu CV en ingles con foto profesional.",
		ApproximateTime:  "1-4 semanas",
		CommonErrors:     model.StringList{"Enviar CV sin foto o en formato incorrecto", "Aplicar a puestos sin cumplir requisitos minimos", "No verificar que la agencia sea legitima"},
		CandidateActions: model.StringList{"Aplicas a vacantes a traves de portales oficiales de navieras, agencias autorizadas o ferias de empleo maritimo. Preparas tu CV en ingles con foto profesional."},
		ShipperRequests:  model.StringList{"La naviera o agencia revisa perfiles y preselecciona candidatos que cumplen requisitos basicos. No hay garantia de avanzar en el proceso."},
		Position:         1,
	},
	{
		Title:            "Entrevistas finales",
		Description:      "Participas en entrevistas (presenciales o virtuales). Demuestras tu nivel de ingles, experiencia y actitud de servicio. Pueden incluir pruebas practicas.",
		ApproximateTime:  "1-3 semanas",
		CommonErrors:     model.StringList{"No practicar ingles antes de la entrevista", "No investigar sobre la naviera", "Vestimenta inapropiada en entrevista presencial"},
		CandidateActions: model.StringList{"Participas en entrevistas (presenciales o virtuales). Demuestras tu nivel de ingles, experiencia y actitud de servicio. Pueden incluir pruebas practicas."},
		ShipperRequests:  model.StringList{"Evaluan competencias tecnicas, nivel de idioma, presentacion personal y compatibilidad con la cultura de la naviera."},
		Position:         2,
	},
	{
		Title:            "Firma de contrato",
		Description:      "Revisas cuidadosamente los terminos del contrato: duracion, salario, beneficios, politicas de la naviera. Firmas solo si estas de acuerdo con todo.",
		ApproximateTime:  "1-2 semanas",
		CommonErrors:     model.StringList{"Firmar sin leer el contrato completo", "No preguntar sobre clausulas que no entiendas", "Aceptar condiciones verbales sin respaldo escrito"},
		CandidateActions: model.StringList{"Revisas cuidadosamente los terminos del contrato: duracion, salario, beneficios, politicas de la naviera. Firmas solo si estas de acuerdo con todo."},
		ShipperRequests:  model.StringList{"Presenta contrato formal con terminos, condiciones, duracion y compensacion. Debe cumplir con el Convenio de Trabajo Maritimo (MLC 2006)."},
		Position:         3,
	},
	{
		Title:            "Documentacion requerida",
		Description:      "Gestionas toda la documentacion necesaria: pasaporte vigente, certificados STCW, examen medico maritimo, visa si aplica, libreta de embarque.",
		ApproximateTime:  "2-8 semanas",
		CommonErrors:     model.StringList{"Pasaporte proximo a vencer", "No verificar requisitos de visa del puerto de embarque", "Realizar examen medico en clinica no autorizada", "Dejar tramites para ultimo momento"},
		CandidateActions: model.StringList{"Gestionas toda la documentacion necesaria: pasaporte vigente (minimo 6 meses), certificados STCW, examen medico maritimo (ENG1 o equivalente), visa si aplica, libreta de embarque."},
		ShipperRequests:  model.StringList{"Proporciona lista detallada de documentos requeridos, clinicas autorizadas para examen medico y plazos de entrega."},
		Position:         4,
	},
	{
		Title:            "Entrenamientos previos",
		Description:      "Completas cursos STCW basicos y cualquier entrenamiento especifico requerido por la naviera.",
		ApproximateTime:  "1-4 semanas",
		CommonErrors:     model.StringList{"No completar todos los modulos STCW requeridos", "Certificados STCW vencidos", "No guardar copias digitales de todos los certificados"},
		CandidateActions: model.StringList{"Completas cursos STCW basicos (seguridad, supervivencia, primeros auxilios, prevencion de incendios) y cualquier entrenamiento especifico requerido por la naviera."},
		ShipperRequests:  model.StringList{"Puede ofrecer entrenamientos adicionales en linea o presenciales sobre politicas, sistemas y procedimientos especificos de la compania."},
		Position:         5,
	},
	{
		Title:            "Compra o asignacion de pasajes",
		Description:      "Coordinas tu viaje al puerto de embarque. En algunos casos la naviera cubre el pasaje; en otros, es responsabilidad del tripulante.",
		ApproximateTime:  "1-2 semanas antes del embarque",
		CommonErrors:     model.StringList{"No confirmar quien cubre el costo del pasaje", "No tener plan B ante cancelaciones de vuelos", "No llevar copias impresas de documentos de viaje"},
		CandidateActions: model.StringList{"Coordinas tu viaje al puerto de embarque. En algunos casos la naviera cubre el pasaje; en otros, es responsabilidad del tripulante (revisar contrato)."},
		ShipperRequests:  model.StringList{"Informa sobre el puerto de embarque, fecha y hora exacta. Puede proporcionar instrucciones de viaje o asistencia con reservas."},
		Position:         6,
	},
	{
		Title:            "Instrucciones de embarque",
		Description:      "Recibes instrucciones detalladas: puerto, terminal, hora de presentacion, que llevar, codigo de vestimenta, contacto de emergencia.",
		ApproximateTime:  "1-2 semanas antes del embarque",
		CommonErrors:     model.StringList{"No leer las instrucciones completas", "No confirmar recepcion de las instrucciones", "No preparar equipaje segun las indicaciones"},
		CandidateActions: model.StringList{"Recibes instrucciones detalladas: puerto, terminal, hora de presentacion, que llevar, codigo de vestimenta, contacto de emergencia."},
		ShipperRequests:  model.StringList{"Envia joining instructions con toda la informacion logistica. Puede incluir contacto local para asistencia."},
		Position:         7,
	},
	{
		Title:            "Llegada al puerto",
		Description:      "Te presentas en el puerto/terminal en la fecha y hora indicada con toda tu documentacion original.",
		ApproximateTime:  "Dia de embarque",
		CommonErrors:     model.StringList{"Llegar tarde al puerto", "No llevar documentos originales", "No tener copias de respaldo de documentos importantes"},
		CandidateActions: model.StringList{"Te presentas en el puerto/terminal en la fecha y hora indicada con toda tu documentacion original. Sigues las instrucciones del personal de la naviera."},
		ShipperRequests:  model.StringList{"Personal de la naviera recibe a la tripulacion, verifica documentacion y coordina el abordaje."},
		Position:         8,
	},
	{
		Title:            "Seguridad e induccion inicial",
		Description:      "Participas en la induccion de seguridad obligatoria: simulacros de emergencia, ubicacion de equipos de salvamento, procedimientos de evacuacion.",
		ApproximateTime:  "Primeras 24 horas a bordo",
		CommonErrors:     model.StringList{"No prestar atencion a los simulacros", "No memorizar tu estacion de emergencia", "No familiarizarte con las rutas de evacuacion"},
		CandidateActions: model.StringList{"Participas en la induccion de seguridad obligatoria: simulacros de emergencia, ubicacion de equipos de salvamento, procedimientos de evacuacion, normas del barco."},
		ShipperRequests:  model.StringList{"Realiza induccion de seguridad obligatoria por regulacion maritima internacional (SOLAS). Asigna estacion de emergencia."},
		Position:         9,
	},
	{
		Title:            "Asignacion de cabina y primeros dias",
		Description:      "Recibes tu cabina compartida, uniforme, tarjeta de identificacion y horario de trabajo. Comienzas periodo de adaptacion.",
		ApproximateTime:  "Primeros 3-7 dias a bordo",
		CommonErrors:     model.StringList{"No adaptarse rapidamente a los horarios", "No pedir ayuda cuando la necesitas", "No respetar las normas de convivencia en cabinas compartidas"},
		CandidateActions: model.StringList{"Recibes tu cabina compartida, uniforme, tarjeta de identificacion y horario de trabajo. Comienzas periodo de adaptacion y entrenamiento en tu puesto especifico."},
		ShipperRequests:  model.StringList{"Asigna cabina, proporciona uniformes y credenciales. Inicia periodo de entrenamiento supervisado en el departamento correspondiente."},
		Position:         10,
	},
}

var seedRequirements = []CreateRequirementParams{
	{Category: "general", Title: "Pasaporte vigente", Description: "Pasaporte con minimo 6-12 meses de vigencia. Es el documento mas importante. Sin pasaporte vigente, no hay embarque posible.", Position: 1},
	{Category: "general", Title: "Certificados STCW", Description: "Certificados basicos de seguridad maritima (STCW): seguridad personal y responsabilidades sociales, tecnicas de supervivencia, prevencion y lucha contra incendios, primeros auxilios. Son obligatorios por regulacion internacional.", Position: 2},
	{Category: "general", Title: "Examen medico maritimo", Description: "Examen medico aprobado (ENG1 o equivalente segun el pais). Debe realizarse en clinicas autorizadas por la autoridad maritima. Incluye examen fisico completo, pruebas de vision, audicion y analisis de laboratorio.", Position: 3},
	{Category: "general", Title: "Nivel de ingles", Description: "El ingles es el idioma de trabajo a bordo. El nivel requerido varia segun el departamento: desde basico (Housekeeping, Galley) hasta avanzado/fluido (Guest Services, Entretenimiento). Otros idiomas son una ventaja.", Position: 4},
	{Category: "general", Title: "Visa (si aplica)", Description: "Dependiendo de tu nacionalidad y el puerto de embarque, podrias necesitar visa de transito o visa C1/D (para embarques en EE.UU.). Verifica con la naviera o agencia los requisitos especificos.", Position: 5},
}

func strPtr(s string) *string { return &s }

var seedSalaryEntries = []CreateSalaryEntryParams{
	{Department: "Hotel / Housekeeping", Position: "Stateroom Attendant", MinSalary: 1200, MaxSalary: 2000, Tips: strPtr("Si (significativas)"), Notes: strPtr("Propinas pueden duplicar el salario base"), SortOrder: 1},
	{Department: "Hotel / Housekeeping", Position: "Public Area Cleaner", MinSalary: 1000, MaxSalary: 1500, Tips: strPtr("Limitadas"), Notes: strPtr("Salario base mas estable"), SortOrder: 2},
	{Department: "Hotel / Housekeeping", Position: "Laundry Attendant", MinSalary: 900, MaxSalary: 1400, Tips: strPtr("No"), Notes: strPtr("Sin contacto directo con pasajeros"), SortOrder: 3},
	{Department: "Hotel / Housekeeping", Position: "Housekeeping Supervisor", MinSalary: 1800, MaxSalary: 2800, Tips: strPtr("Si"), Notes: strPtr("Requiere experiencia previa a bordo"), SortOrder: 4},
	{Department: "Alimentos y Bebidas", Position: "Assistant Waiter", MinSalary: 1200, MaxSalary: 1800, Tips: strPtr("Si"), Notes: strPtr("Propinas compartidas con equipo"), SortOrder: 5},
	{Department: "Alimentos y Bebidas", Position: "Waiter", MinSalary: 1500, MaxSalary: 2500, Tips: strPtr("Si (altas)"), Notes: strPtr("Propinas pueden ser muy significativas"), SortOrder: 6},
	{Department: "Alimentos y Bebidas", Position: "Head Waiter", MinSalary: 2200, MaxSalary: 3500, Tips: strPtr("Si"), Notes: strPtr("Puesto de supervision"), SortOrder: 7},
	{Department: "Alimentos y Bebidas", Position: "Bartender", MinSalary: 1400, MaxSalary: 2200, Tips: strPtr("Si"), Notes: strPtr("Varia segun ubicacion del bar"), SortOrder: 8},
	{Department: "Alimentos y Bebidas", Position: "Buffet Attendant", MinSalary: 1000, MaxSalary: 1600, Tips: strPtr("Limitadas"), Notes: strPtr("Menor interaccion con pasajeros"), SortOrder: 9},
	{Department: "Cocina / Galley", Position: "Galley Steward", MinSalary: 800, MaxSalary: 1200, Tips: strPtr("No"), Notes: strPtr("Puesto entry-level"), SortOrder: 10},
	{Department: "Cocina / Galley", Position: "Commis Chef", MinSalary: 1200, MaxSalary: 1800, Tips: strPtr("No"), Notes: strPtr("Cocinero junior"), SortOrder: 11},
	{Department: "Cocina / Galley", Position: "Chef de Partie", MinSalary: 2000, MaxSalary: 3200, Tips: strPtr("No"), Notes: strPtr("Jefe de seccion"), SortOrder: 12},
	{Department: "Cocina / Galley", Position: "Sous Chef", MinSalary: 3000, MaxSalary: 4500, Tips: strPtr("No"), Notes: strPtr("Segundo al mando"), SortOrder: 13},
	{Department: "Cocina / Galley", Position: "Executive Chef", MinSalary: 5000, MaxSalary: 8000, Tips: strPtr("No"), Notes: strPtr("Maximo responsable"), SortOrder: 14},
	{Department: "Entretenimiento", Position: "Youth Staff", MinSalary: 1200, MaxSalary: 1800, Tips: strPtr("No"), Notes: strPtr("Programas infantiles"), SortOrder: 15},
	{Department: "Entretenimiento", Position: "Activities Coordinator", MinSalary: 1500, MaxSalary: 2500, Tips: strPtr("No"), Notes: strPtr("Animacion de actividades"), SortOrder: 16},
	{Department: "Entretenimiento", Position: "Musician", MinSalary: 2000, MaxSalary: 4000, Tips: strPtr("Posibles"), Notes: strPtr("Varia segun tipo de contrato"), SortOrder: 17},
	{Department: "Entretenimiento", Position: "Cruise Director", MinSalary: 4000, MaxSalary: 7000, Tips: strPtr("No"), Notes: strPtr("Puesto de alta responsabilidad"), SortOrder: 18},
	{Department: "Otros departamentos", Position: "Casino Dealer", MinSalary: 1200, MaxSalary: 2000, Tips: strPtr("Si"), Notes: strPtr("Propinas variables"), SortOrder: 19},
	{Department: "Otros departamentos", Position: "Spa Therapist", MinSalary: 1000, MaxSalary: 1500, Tips: strPtr("Si + comisiones"), Notes: strPtr("Ingresos dependen de ventas"), SortOrder: 20},
	{Department: "Otros departamentos", Position: "Shop Assistant", MinSalary: 1200, MaxSalary: 1800, Tips: strPtr("No + comisiones"), Notes: strPtr("Comisiones por ventas"), SortOrder: 21},
	{Department: "Otros departamentos", Position: "Guest Services Agent", MinSalary: 1800, MaxSalary: 2800, Tips: strPtr("Limitadas"), Notes: strPtr("Requiere ingles avanzado"), SortOrder: 22},
	{Department: "Otros departamentos", Position: "Able Seaman", MinSalary: 1800, MaxSalary: 2800, Tips: strPtr("No"), Notes: strPtr("Departamento de Cubierta"), SortOrder: 23},
	{Department: "Otros departamentos", Position: "Third Engineer", MinSalary: 3000, MaxSalary: 4500, Tips: strPtr("No"), Notes: strPtr("Departamento de Motor"), SortOrder: 24},
}

// Fraud signals are grouped by category; positions are offset per group so
// new entries can be appended to any group without renumbering the others.
var seedRedFlags = []string{
	"Prometen embarque garantizado o empleo seguro",
	"Cobran por vacantes, contratos o 'acceso a bases de datos'",
	"Solicitan pagos urgentes sin documentacion formal",
	"Usan correos no oficiales (gmail, hotmail) en lugar de dominios corporativos",
	"No tienen sitio web profesional o su presencia en linea es minima",
	"Presionan para que tomes decisiones rapidas sin tiempo para pensar",
	"Ofrecen salarios muy por encima del promedio del mercado",
	"No pueden demostrar relacion con navieras especificas",
	"Piden informacion personal sensible antes de cualquier proceso formal",
	"No proporcionan contrato escrito ni documentacion oficial",
}

var seedIllegalCharges = []string{
	"Pago por conseguir empleo o 'colocarte' en una naviera — Ninguna agencia legitima cobra al candidato por conseguirle trabajo.",
	"Pago por 'contactos internos' o 'acceso privilegiado' — No existen atajos pagados para conseguir empleo en cruceros.",
	"Pago por 'reservar' una vacante o 'asegurar' tu puesto — Las vacantes no se reservan con dinero.",
	"Comisiones por 'gestionar' tu documentacion — Tu documentacion la gestionas directamente con las instituciones oficiales.",
}

var seedVerificationTips = []string{
	"Verifica que la agencia tenga registro mercantil, RUT/NIT y domicilio fiscal real.",
	"Sitio web profesional con dominio propio, informacion de contacto verificable, direccion fisica.",
	"Las agencias legitimas declaran abiertamente que no cobran a los candidatos.",
	"Deben poder demostrar que son agencias autorizadas por navieras especificas.",
	"Busca resenas, testimonios y referencias de personas que hayan embarcado a traves de esa agencia.",
	"El proceso de seleccion debe ser claro, con etapas definidas y comunicacion profesional.",
}

func seedFraudSignals() []CreateFraudSignalParams {
	var all []CreateFraudSignalParams
	for i, s := range seedRedFlags {
		all = append(all, CreateFraudSignalParams{Signal: s, Category: model.FraudCategoryRedFlag, Position: int64(i + 1)})
	}
	for i, s := range seedIllegalCharges {
		all = append(all, CreateFraudSignalParams{Signal: s, Category: model.FraudCategoryIllegalCharge, Position: int64(i + 20)})
	}
	for i, s := range seedVerificationTips {
		all = append(all, CreateFraudSignalParams{Signal: s, Category: model.FraudCategoryVerificationTip, Position: int64(i + 30)})
	}
	return all
}

var seedMyths = []CreateMythParams{
	{
		Title:               "Te haces rico rapido trabajando en cruceros",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "Los salarios en cruceros pueden ser competitivos considerando que no tienes gastos de alojamiento ni alimentacion, pero no son fortunas.",
		DetailedExplanation: "La acumulacion de ahorro depende de tu disciplina financiera, tu cargo y la naviera.",
		Details:             model.StringList{"Los puestos entry-level tienen salarios modestos (USD $800-$1,500/mes base)", "Las propinas pueden mejorar significativamente el ingreso en algunos departamentos", "El verdadero beneficio es que puedes ahorrar un porcentaje alto al no tener gastos fijos", "Hacerse 'rico' requiere anos de experiencia, ascensos y buena gestion del dinero", "Muchos tripulantes gastan sus ahorros en los puertos si no tienen disciplina financiera"},
		Position:            1,
	},
	{
		Title:               "No necesitas ingles para trabajar en cruceros",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "El ingles es el idioma de trabajo a bordo de practicamente todas las navieras internacionales.",
		DetailedExplanation: "El nivel requerido varia segun el departamento, pero un minimo basico es necesario en todos los casos.",
		Details:             model.StringList{"Departamentos como Guest Services y Entretenimiento requieren ingles avanzado/fluido", "Housekeeping y Galley pueden requerir un nivel basico-intermedio", "Los simulacros de seguridad y comunicaciones oficiales son en ingles", "Sin ingles, tus opciones se reducen drasticamente", "Otros idiomas son una ventaja adicional, no un reemplazo del ingles"},
		Position:            2,
	},
	{
		Title:               "Todos los cargos ganan igual",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "Existe una diferencia enorme entre los salarios de diferentes cargos y departamentos.",
		DetailedExplanation: "Un Galley Steward puede ganar $800/mes mientras que un Executive Chef puede superar los $8,000/mes.",
		Details:             model.StringList{"Los oficiales de Cubierta y Motor tienen los salarios mas altos a largo plazo", "Las propinas crean diferencias significativas entre puestos similares", "Puestos basados en comisiones (Spa, Retail) tienen ingresos muy variables", "La experiencia y los contratos sucesivos mejoran gradualmente el salario", "Diferentes navieras pagan diferente por el mismo cargo"},
		Position:            3,
	},
	{
		Title:               "Es como estar de vacaciones",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "Trabajar en un crucero es un empleo demandante con jornadas largas, espacio personal limitado y separacion de familia y amigos.",
		DetailedExplanation: "Los tripulantes trabajan mientras los pasajeros vacacionan.",
		Details:             model.StringList{"Jornadas tipicas de 10-14 horas diarias, 7 dias a la semana", "Contratos de 4-9 meses sin dias libres en muchos departamentos", "Cabinas compartidas con espacio muy reducido", "Separacion prolongada de familia y amigos", "Acceso limitado a internet (costoso y lento en alta mar)", "Puedes visitar puertos en tu tiempo libre, pero el tiempo es limitado"},
		Position:            4,
	},
	{
		Title:               "Cualquiera puede entrar sin requisitos",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "Todos los puestos a bordo requieren al menos documentacion basica y un nivel minimo de ingles.",
		DetailedExplanation: "Los puestos especializados requieren formacion y experiencia especifica.",
		Details:             model.StringList{"Los certificados STCW son obligatorios por regulacion maritima internacional", "El examen medico maritimo es un requisito innegociable", "Puestos tecnicos requieren formacion maritima formal", "Puestos de Spa requieren certificaciones profesionales", "Incluso los puestos entry-level tienen un proceso de seleccion competitivo"},
		Position:            5,
	},
	{
		Title:               "Las navieras te pagan todo desde el principio",
		Verdict:             model.VerdictTrue,
		ShortDescription:    "Las navieras cubren alojamiento y alimentacion durante el contrato, pero los costos previos son del candidato.",
		DetailedExplanation: "Los costos previos al embarque (certificados, examen medico, pasaporte, visa) generalmente son responsabilidad del candidato.",
		Details:             model.StringList{"Alojamiento y alimentacion a bordo: cubiertos por la naviera", "Certificados STCW: generalmente a cargo del candidato", "Examen medico: generalmente a cargo del candidato", "Pasaporte y visa: siempre a cargo del candidato", "Pasaje al puerto de embarque: varia segun la naviera y el contrato"},
		Position:            6,
	},
	{
		Title:               "Una vez que entras, tienes trabajo de por vida",
		Verdict:             model.VerdictFalse,
		ShortDescription:    "Los contratos en cruceros son temporales (4-9 meses tipicamente).",
		DetailedExplanation: "La renovacion depende de tu desempeno, las necesidades de la naviera y la disponibilidad de vacantes.",
		Details:             model.StringList{"Cada contrato es independiente; no hay garantia de renovacion", "Tu desempeno es evaluado constantemente a bordo", "Las navieras pueden reducir personal segun la temporada", "Mantener buenas evaluaciones aumenta las probabilidades de recontratacion", "Algunos tripulantes construyen carreras largas, pero no es automatico"},
		Position:            7,
	},
}

var seedDisclaimers = []CreateDisclaimerParams{
	{Key: "general", Title: "Aviso legal general", Content: "Dockly NO es una naviera ni una agencia de contratacion. No garantizamos empleo, no cobramos a candidatos y toda la informacion es unicamente orientativa y educativa."},
	{Key: "areas", Title: "Aviso legal - Areas de trabajo", Content: "Los requisitos, cargos y condiciones pueden variar significativamente segun la naviera, el barco y la temporada. Esta informacion es referencial y no constituye oferta laboral."},
	{Key: "boarding", Title: "Aviso legal - Proceso de embarque", Content: "El proceso de embarque puede variar segun la naviera, el puesto y el pais. Esta informacion es orientativa y no garantiza embarque. Cada naviera tiene sus propios procedimientos y tiempos."},
	{Key: "requisitos", Title: "Aviso legal - Requisitos", Content: "Los requisitos pueden variar segun la naviera, el pais de origen, el puesto y la temporada. Esta informacion es referencial. Siempre verifica directamente con la naviera o agencia autorizada."},
	{Key: "salarios", Title: "Aviso legal - Salarios", Content: "Todos los salarios mostrados son estimaciones promedio en dolares estadounidenses (USD) mensuales. No constituyen oferta salarial ni garantia de ingresos. Los montos reales pueden variar significativamente."},
	{Key: "estafas", Title: "Aviso legal - Estafas", Content: "Esta informacion es orientativa y busca ayudarte a identificar posibles fraudes. Ante cualquier duda, consulta con las autoridades competentes de tu pais."},
	{Key: "mitos", Title: "Aviso legal - Mitos y verdades", Content: "Las experiencias pueden variar segun la naviera, el puesto, el barco y las circunstancias personales. Esta informacion busca ofrecer una perspectiva realista basada en datos generales de la industria."},
}
